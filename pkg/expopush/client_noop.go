package expopush

import "context"

// Noop answers every batch with one accepted ticket per message without doing
// any network call. Used when no upstream is configured, and in tests.
type Noop struct{}

var _ Client = (*Noop)(nil)

func NewNoop() *Noop {
	return &Noop{}
}

func (n Noop) SendBatch(_ context.Context, messages []PushMessage) (BatchResult, error) {
	tickets := make([]PushTicket, 0, len(messages))
	for range messages {
		tickets = append(tickets, PushTicket{Status: TicketStatusOK})
	}

	return BatchResult{Tickets: tickets}, nil
}
