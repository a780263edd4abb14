package tokensvc

import (
	"context"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/storage"
	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
	"go.opentelemetry.io/otel/trace"
)

const warnNoStore = "token accepted but not persisted: no token store configured"

type DefaultServiceConfig struct {
	// TokenRepo may be nil: that is the degraded no-store mode.
	TokenRepo tokenrepo.Repo
}

type DefaultService struct {
	Config DefaultServiceConfig
}

var _ Service = (*DefaultService)(nil)

func New(cfg DefaultServiceConfig) (*DefaultService, error) {
	return &DefaultService{Config: cfg}, nil
}

func (s *DefaultService) Register(ctx context.Context, input InputRegister) (out OutRegister, err error) {
	var span trace.Span
	ctx, span = tracer.StartSpan(ctx, "tokensvc.Register")
	defer span.End()

	err = validator.Validate(input)
	if err != nil {
		err = fmt.Errorf("validation error: %w", err)
		return
	}

	if s.Config.TokenRepo == nil {
		logger.Warn(ctx, "register token without token store, nothing persisted")
		out = OutRegister{Warning: warnNoStore}
		return
	}

	upserted, err := s.Config.TokenRepo.UpsertToken(ctx, tokenrepo.NewPushToken(input.Token, input.Platform))
	if err != nil {
		err = fmt.Errorf("%w: upsert token: %v", storage.ErrStore, err)
		return
	}

	out = OutRegister{Token: &upserted}
	return
}
