package handlerpush

import (
	"net/http"

	"github.com/festibalparty/festibal-push-backend/internal/svc/pushsvc"
	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/httperr"
	"github.com/segmentio/encoding/json"
	"go.opentelemetry.io/otel/trace"
)

type HandlerConfig struct {
	PushService pushsvc.Service `validate:"required"`
}

type Handler struct {
	Config HandlerConfig
}

func NewHandler(cfg HandlerConfig) (*Handler, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, err
	}

	return &Handler{Config: cfg}, nil
}

type BroadcastReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type BroadcastResp struct {
	Ok      bool                  `json:"ok"`
	Tickets []expopush.PushTicket `json:"tickets"`
}

type SendNotificationReq struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type SendNotificationResp struct {
	Ok     bool                 `json:"ok"`
	Ticket *expopush.PushTicket `json:"ticket"`
}

func (h *Handler) Broadcast() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var span trace.Span
		ctx, span = tracer.StartSpan(ctx, "handlerpush.Broadcast")
		defer span.End()

		r = r.WithContext(ctx)

		var reqBody BroadcastReq
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&reqBody)
		if err != nil {
			httperr.WriteDecode(w, r, err)
			return
		}

		broadcastOut, err := h.Config.PushService.Broadcast(ctx, pushsvc.InputBroadcast{
			Title: reqBody.Title,
			Body:  reqBody.Body,
		})
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		respBody := BroadcastResp{
			Ok:      true,
			Tickets: broadcastOut.Tickets,
		}

		respbuilder.WriteJSON(http.StatusOK, w, r, respBody)
	}
}

func (h *Handler) Send() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var span trace.Span
		ctx, span = tracer.StartSpan(ctx, "handlerpush.Send")
		defer span.End()

		r = r.WithContext(ctx)

		var reqBody SendNotificationReq
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&reqBody)
		if err != nil {
			httperr.WriteDecode(w, r, err)
			return
		}

		sendOut, err := h.Config.PushService.Send(ctx, pushsvc.InputSend{
			To:    reqBody.To,
			Title: reqBody.Title,
			Body:  reqBody.Body,
		})
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		respBody := SendNotificationResp{
			Ok:     true,
			Ticket: &sendOut.Tickets[0],
		}

		respbuilder.WriteJSON(http.StatusOK, w, r, respBody)
	}
}
