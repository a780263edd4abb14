package tokenrepo

import "context"

// Repo is the push-token repository service.
type Repo interface {
	// UpsertToken inserts a token or, when the token already exists, advances
	// last_seen_at and conditionally overwrites platform.
	UpsertToken(ctx context.Context, token PushToken) (upserted PushToken, err error)

	// GetTokens returns every registered token.
	GetTokens(ctx context.Context) (tokens []PushToken, err error)
}
