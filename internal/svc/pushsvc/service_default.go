package pushsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/storage"
	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
	"go.opentelemetry.io/otel/trace"
)

type DefaultServiceConfig struct {
	PushClient expopush.Client `validate:"required"`

	// TokenRepo may be nil: broadcast then fails with ErrTokenStoreUnconfigured.
	TokenRepo tokenrepo.Repo
}

type DefaultService struct {
	Config DefaultServiceConfig
}

var _ Service = (*DefaultService)(nil)

func New(cfg DefaultServiceConfig) (*DefaultService, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, fmt.Errorf("push service config error: %w", err)
	}

	return &DefaultService{Config: cfg}, nil
}

func (s *DefaultService) Broadcast(ctx context.Context, input InputBroadcast) (out *OutSend, err error) {
	var span trace.Span
	ctx, span = tracer.StartSpan(ctx, "pushsvc.Broadcast")
	defer span.End()

	err = validator.Validate(input)
	if err != nil {
		err = fmt.Errorf("validation error: %w", err)
		return
	}

	if s.Config.TokenRepo == nil {
		err = ErrTokenStoreUnconfigured
		return
	}

	tokens, err := s.Config.TokenRepo.GetTokens(ctx)
	if err != nil {
		err = fmt.Errorf("%w: read tokens: %v", storage.ErrStore, err)
		return
	}

	if len(tokens) == 0 {
		err = ErrNoRecipients
		return
	}

	messages := make([]expopush.PushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, expopush.PushMessage{
			To:    token.Token,
			Title: input.Title,
			Body:  input.Body,
		})
	}

	logger.Info(ctx, "broadcasting push notification",
		logger.KV("recipients", len(messages)),
	)

	return s.forward(ctx, messages)
}

func (s *DefaultService) Send(ctx context.Context, input InputSend) (out *OutSend, err error) {
	var span trace.Span
	ctx, span = tracer.StartSpan(ctx, "pushsvc.Send")
	defer span.End()

	err = validator.Validate(input)
	if err != nil {
		err = fmt.Errorf("validation error: %w", err)
		return
	}

	out, err = s.forward(ctx, []expopush.PushMessage{{
		To:    input.To,
		Title: input.Title,
		Body:  input.Body,
	}})
	if err != nil {
		return
	}

	// single send inspects the first ticket, its status decides the outcome
	first := out.Tickets[0]
	if first.Status != expopush.TicketStatusOK {
		err = &UpstreamRejectedError{Ticket: first}
		out = nil
	}

	return
}

// forward ships the whole batch in one upstream call, no chunking and no retry.
func (s *DefaultService) forward(ctx context.Context, messages []expopush.PushMessage) (*OutSend, error) {
	result, err := s.Config.PushClient.SendBatch(ctx, messages)
	if err != nil {
		if errors.Is(err, expopush.ErrNoTickets) {
			return nil, &InvalidUpstreamResponseError{Raw: result.RawBody}
		}

		return nil, err
	}

	return &OutSend{Tickets: result.Tickets}, nil
}
