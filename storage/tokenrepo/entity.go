package tokenrepo

import (
	"strings"
	"time"
)

// PushToken is one registered delivery target of the client app.
// Token is the opaque identifier the push platform issued, unique per record.
type PushToken struct {
	ID         int64     `json:"id" db:"id"`
	Token      string    `json:"token" db:"token" validate:"required"`
	Platform   string    `json:"platform" db:"platform"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" validate:"required"`
	LastSeenAt time.Time `json:"last_seen_at" db:"last_seen_at" validate:"required"`
}

func NewPushToken(token, platform string) PushToken {
	now := time.Now().UTC()
	return PushToken{
		Token:      strings.TrimSpace(token),
		Platform:   strings.TrimSpace(platform),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Merge applies re-registration semantics on top of an existing record:
// LastSeenAt always advances, Platform is overwritten only by a non-empty
// value, identity and CreatedAt are kept.
func (t PushToken) Merge(existing PushToken) PushToken {
	merged := existing
	merged.LastSeenAt = t.LastSeenAt

	if t.Platform != "" {
		merged.Platform = t.Platform
	}

	return merged
}
