package newsrepo

import (
	"context"
	"fmt"
	"time"

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

func (p *RepoPostgres) CreateNews(ctx context.Context, item NewsItem) (inserted NewsItem, err error) {
	if item.Title == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrNewsTitleRequired)
		return
	}

	if item.Message == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrNewsMessageRequired)
		return
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = sqlx.GetContext(ctx, p.Config.Connection, &inserted, sqlCreateNews,
		item.Title, item.Message, createdAt,
	)
	return
}

func (p *RepoPostgres) ListNews(ctx context.Context) (items []NewsItem, err error) {
	err = sqlx.SelectContext(ctx, p.Config.Connection, &items, sqlSelectNews)
	return
}
