package pushsvc

import (
	"errors"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
	"github.com/segmentio/encoding/json"
)

var (
	// ErrNoRecipients means a broadcast found zero registered tokens.
	ErrNoRecipients = errors.New("no push tokens registered")

	// ErrTokenStoreUnconfigured means broadcast requires a token store but
	// none is configured.
	ErrTokenStoreUnconfigured = errors.New("token store is not configured")
)

// InvalidUpstreamResponseError is raised when the push platform answered
// without any ticket. Raw carries the upstream payload for diagnosis.
type InvalidUpstreamResponseError struct {
	Raw json.RawMessage
}

func (e *InvalidUpstreamResponseError) Error() string {
	return expopush.ErrNoTickets.Error()
}

func (e *InvalidUpstreamResponseError) Unwrap() error {
	return expopush.ErrNoTickets
}

// UpstreamRejectedError is raised on single-send when the first ticket came
// back with a non-ok status.
type UpstreamRejectedError struct {
	Ticket expopush.PushTicket
}

func (e *UpstreamRejectedError) Error() string {
	if e.Ticket.Message != "" {
		return fmt.Sprintf("push delivery rejected: %s", e.Ticket.Message)
	}

	return fmt.Sprintf("push delivery rejected with status '%s'", e.Ticket.Status)
}
