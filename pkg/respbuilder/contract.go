package respbuilder

import "net/http"

type ErrKind int64

const (
	ErrUnhandled ErrKind = iota + 1
	ErrValidation
	ErrNoRecipients
	ErrConfiguration
	ErrUpstreamUnavailable
	ErrInvalidUpstreamResponse
	ErrUpstreamRejected
	ErrStore
)

type Reason struct {
	Code       string
	Message    string
	HTTPStatus int
}

var ReasonMap = map[ErrKind]Reason{
	ErrUnhandled:               {Code: "unhandled_error", Message: "unhandled error", HTTPStatus: http.StatusInternalServerError},
	ErrValidation:              {Code: "validation_error", Message: "invalid request payload", HTTPStatus: http.StatusBadRequest},
	ErrNoRecipients:            {Code: "no_recipients", Message: "no push tokens registered", HTTPStatus: http.StatusBadRequest},
	ErrConfiguration:           {Code: "configuration_error", Message: "required backing store is not configured", HTTPStatus: http.StatusInternalServerError},
	ErrUpstreamUnavailable:     {Code: "upstream_unavailable", Message: "push delivery service unreachable", HTTPStatus: http.StatusInternalServerError},
	ErrInvalidUpstreamResponse: {Code: "invalid_upstream_response", Message: "push delivery service returned no tickets", HTTPStatus: http.StatusInternalServerError},
	ErrUpstreamRejected:        {Code: "upstream_rejected", Message: "push delivery service rejected the message", HTTPStatus: http.StatusBadRequest},
	ErrStore:                   {Code: "store_error", Message: "database statement failed", HTTPStatus: http.StatusInternalServerError},
}

// HTTPError is the uniform failure body: ok flag, stable code, human message.
// Upstream is only filled for invalid upstream responses so callers can see
// the raw payload the push service answered with.
type HTTPError struct {
	Ok       bool        `json:"ok"`
	Code     string      `json:"error"`
	Message  string      `json:"message"`
	Upstream interface{} `json:"upstream,omitempty"`
	TraceID  string      `json:"trace_id,omitempty"`
}

func (e HTTPError) Error() string {
	return e.Code + ": " + e.Message
}
