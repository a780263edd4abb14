package pushsvc

import (
	"context"

	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
)

type Service interface {
	// Broadcast sends one payload to every registered token in a single
	// batched upstream call.
	Broadcast(ctx context.Context, input InputBroadcast) (out *OutSend, err error)

	// Send delivers one payload to one explicit token and inspects the
	// resulting ticket.
	Send(ctx context.Context, input InputSend) (out *OutSend, err error)
}

type InputBroadcast struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

type InputSend struct {
	To    string `validate:"required"`
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

type OutSend struct {
	Tickets []expopush.PushTicket
}
