package httperr

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/festibalparty/festibal-push-backend/internal/svc/newssvc"
	"github.com/festibalparty/festibal-push-backend/internal/svc/pushsvc"
	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/festibalparty/festibal-push-backend/storage"
)

// Write maps a service error onto the fixed error taxonomy and writes the
// JSON failure body. Every failure is also logged here, nothing propagates
// past the request boundary.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	kind := classify(err)

	logger.Error(ctx, "request failed",
		logger.KV("error", err.Error()),
		logger.KV("error_code", respbuilder.ReasonMap[kind].Code),
	)

	var invalidUpstream *pushsvc.InvalidUpstreamResponseError
	if errors.As(err, &invalidUpstream) {
		resp := respbuilder.ErrorWithUpstream(ctx, kind, err, invalidUpstream.Raw)
		respbuilder.WriteJSON(respbuilder.Status(kind), w, r, resp)
		return
	}

	var rejected *pushsvc.UpstreamRejectedError
	if errors.As(err, &rejected) {
		resp := respbuilder.ErrorWithUpstream(ctx, kind, err, rejected.Ticket)
		respbuilder.WriteJSON(respbuilder.Status(kind), w, r, resp)
		return
	}

	resp := respbuilder.Error(ctx, kind, err)
	respbuilder.WriteJSON(respbuilder.Status(kind), w, r, resp)
}

func classify(err error) respbuilder.ErrKind {
	var validationErrs validator.ValidationErrors
	var invalidUpstream *pushsvc.InvalidUpstreamResponseError
	var rejected *pushsvc.UpstreamRejectedError

	switch {
	case errors.As(err, &validationErrs), errors.Is(err, storage.ErrValidation):
		return respbuilder.ErrValidation
	case errors.Is(err, pushsvc.ErrNoRecipients):
		return respbuilder.ErrNoRecipients
	case errors.Is(err, pushsvc.ErrTokenStoreUnconfigured), errors.Is(err, newssvc.ErrStoreUnconfigured):
		return respbuilder.ErrConfiguration
	case errors.As(err, &invalidUpstream):
		return respbuilder.ErrInvalidUpstreamResponse
	case errors.As(err, &rejected):
		return respbuilder.ErrUpstreamRejected
	case errors.Is(err, expopush.ErrUnavailable):
		return respbuilder.ErrUpstreamUnavailable
	case errors.Is(err, storage.ErrStore):
		return respbuilder.ErrStore
	default:
		return respbuilder.ErrUnhandled
	}
}

// WriteDecode reports a request body that could not be parsed into the
// expected shape, wrong field types included.
func WriteDecode(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	logger.Error(ctx, "request body decode failed", logger.KV("error", err.Error()))

	resp := respbuilder.Error(ctx, respbuilder.ErrValidation, err)
	respbuilder.WriteJSON(respbuilder.Status(respbuilder.ErrValidation), w, r, resp)
}
