package expopush

import (
	"context"
	"errors"

	"github.com/segmentio/encoding/json"
)

// DefaultEndpoint is the push-delivery batch endpoint of the Expo platform.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// TicketStatusOK marks a ticket whose message was accepted for delivery.
const TicketStatusOK = "ok"

var (
	// ErrUnavailable marks a transport-level failure: network error, timeout,
	// or a body that is not JSON.
	ErrUnavailable = errors.New("push delivery service unreachable")

	// ErrNoTickets marks a decodable response whose ticket array is absent or
	// empty. The raw payload is kept on BatchResult for diagnosis.
	ErrNoTickets = errors.New("push delivery response contains no tickets")
)

type Client interface {
	// SendBatch delivers all messages in one upstream call and returns the
	// per-message tickets.
	SendBatch(ctx context.Context, messages []PushMessage) (BatchResult, error)
}

// PushMessage is one outbound notification payload.
type PushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushTicket is the per-message outcome the push platform answers with.
// On failure Message holds the human explanation and Details the machine
// readable error, e.g. {"error": "DeviceNotRegistered"}.
type PushTicket struct {
	Status  string                 `json:"status"`
	ID      string                 `json:"id,omitempty"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type BatchResult struct {
	Tickets []PushTicket    `json:"tickets,omitempty"`
	RawBody json.RawMessage `json:"raw_body,omitempty"`
}

// batchResponse is the upstream envelope, tickets are wrapped in "data".
type batchResponse struct {
	Data []PushTicket `json:"data"`
}
