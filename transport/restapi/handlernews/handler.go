package handlernews

import (
	"net/http"

	"github.com/festibalparty/festibal-push-backend/internal/svc/newssvc"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/httperr"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/httptyped"
	"github.com/segmentio/encoding/json"
	"go.opentelemetry.io/otel/trace"
)

type HandlerConfig struct {
	NewsService newssvc.Service `validate:"required"`
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

type CreateNewsReq struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (h *Handler) Create() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var span trace.Span
		ctx, span = tracer.StartSpan(ctx, "handlernews.Create")
		defer span.End()

		r = r.WithContext(ctx)

		var reqBody CreateNewsReq
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&reqBody)
		if err != nil {
			httperr.WriteDecode(w, r, err)
			return
		}

		createOut, err := h.Config.NewsService.Create(ctx, newssvc.InputCreateNews{
			Title:   reqBody.Title,
			Message: reqBody.Message,
		})
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		respBody := httptyped.NewsEntityFromRepo(createOut.News)
		respbuilder.WriteJSON(http.StatusCreated, w, r, respBody)
	}
}

func (h *Handler) List() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var span trace.Span
		ctx, span = tracer.StartSpan(ctx, "handlernews.List")
		defer span.End()

		r = r.WithContext(ctx)

		listOut, err := h.Config.NewsService.List(ctx)
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		respBody := httptyped.NewsEntitiesFromRepo(listOut.News)
		respbuilder.WriteJSON(http.StatusOK, w, r, respBody)
	}
}
