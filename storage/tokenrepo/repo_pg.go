package tokenrepo

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/festibalparty/festibal-push-backend/storage"
)

type RepoPostgresConfig struct {
	Connection sqlx.QueryerContext `validate:"required"`
}

type RepoPostgres struct {
	Config RepoPostgresConfig
}

var _ Repo = (*RepoPostgres)(nil)

// Postgres returns a Repo implementation backed by PgSQL.
func Postgres(conf RepoPostgresConfig) (*RepoPostgres, error) {
	err := validator.New().Struct(conf)
	if err != nil {
		return nil, err
	}

	return &RepoPostgres{
		Config: conf,
	}, nil
}

func (p *RepoPostgres) UpsertToken(ctx context.Context, token PushToken) (upserted PushToken, err error) {
	if token.Token == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrTokenRequired)
		return
	}

	err = sqlx.GetContext(ctx, p.Config.Connection, &upserted, sqlUpsertToken,
		token.Token, token.Platform, token.LastSeenAt,
	)
	return
}

func (p *RepoPostgres) GetTokens(ctx context.Context) (tokens []PushToken, err error) {
	err = sqlx.SelectContext(ctx, p.Config.Connection, &tokens, sqlSelectTokens)
	return
}
