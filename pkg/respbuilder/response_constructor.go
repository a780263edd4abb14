package respbuilder

import (
	"context"
)

// Error builds the failure body for one error kind. The wrapped error message
// becomes the human-readable message; the canned reason text is the fallback.
func Error(ctx context.Context, reasonKind ErrKind, err error) HTTPError {
	tracer := MustExtract(ctx)

	reason, ok := ReasonMap[reasonKind]
	if !ok {
		reason = ReasonMap[ErrUnhandled]
	}

	msg := reason.Message
	if err != nil {
		msg = err.Error()
	}

	return HTTPError{
		Ok:      false,
		Code:    reason.Code,
		Message: msg,
		TraceID: tracer.AppTraceID,
	}
}

// ErrorWithUpstream is Error plus the raw upstream payload for diagnosis.
func ErrorWithUpstream(ctx context.Context, reasonKind ErrKind, err error, upstream interface{}) HTTPError {
	resp := Error(ctx, reasonKind, err)
	resp.Upstream = upstream
	return resp
}

// Status resolves the HTTP status code an error kind maps to.
func Status(reasonKind ErrKind) int {
	reason, ok := ReasonMap[reasonKind]
	if !ok {
		reason = ReasonMap[ErrUnhandled]
	}

	return reason.HTTPStatus
}
