package newssvc

import (
	"context"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/storage"
	"github.com/festibalparty/festibal-push-backend/storage/newsrepo"
	"go.opentelemetry.io/otel/trace"
)

type DefaultServiceConfig struct {
	// NewsRepo may be nil when the persistent store is not configured, every
	// operation then fails with ErrStoreUnconfigured.
	NewsRepo newsrepo.Repo
}

type DefaultService struct {
	Config DefaultServiceConfig
}

var _ Service = (*DefaultService)(nil)

func New(cfg DefaultServiceConfig) (*DefaultService, error) {
	return &DefaultService{Config: cfg}, nil
}

func (s *DefaultService) Create(ctx context.Context, input InputCreateNews) (out OutCreateNews, err error) {
	var span trace.Span
	ctx, span = tracer.StartSpan(ctx, "newssvc.Create")
	defer span.End()

	err = validator.Validate(input)
	if err != nil {
		err = fmt.Errorf("validation error: %w", err)
		return
	}

	if s.Config.NewsRepo == nil {
		err = ErrStoreUnconfigured
		return
	}

	inserted, err := s.Config.NewsRepo.CreateNews(ctx, newsrepo.NewNewsItem(input.Title, input.Message))
	if err != nil {
		err = fmt.Errorf("%w: create news: %v", storage.ErrStore, err)
		return
	}

	out = OutCreateNews{News: inserted}
	return
}

func (s *DefaultService) List(ctx context.Context) (out OutListNews, err error) {
	var span trace.Span
	ctx, span = tracer.StartSpan(ctx, "newssvc.List")
	defer span.End()

	if s.Config.NewsRepo == nil {
		err = ErrStoreUnconfigured
		return
	}

	items, err := s.Config.NewsRepo.ListNews(ctx)
	if err != nil {
		err = fmt.Errorf("%w: list news: %v", storage.ErrStore, err)
		return
	}

	if items == nil {
		items = make([]newsrepo.NewsItem, 0)
	}

	out = OutListNews{News: items}
	return
}
