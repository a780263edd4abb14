package newssvc

import (
	"context"
	"errors"

	"github.com/festibalparty/festibal-push-backend/storage/newsrepo"
)

// ErrStoreUnconfigured is returned when news operations run without a
// configured persistent store.
var ErrStoreUnconfigured = errors.New("news store is not configured")

type Service interface {
	Create(ctx context.Context, input InputCreateNews) (out OutCreateNews, err error)
	List(ctx context.Context) (out OutListNews, err error)
}

type InputCreateNews struct {
	Title   string `validate:"required"`
	Message string `validate:"required"`
}

type OutCreateNews struct {
	News newsrepo.NewsItem
}

type OutListNews struct {
	News []newsrepo.NewsItem
}
