package handlertoken

import (
	"net/http"

	"github.com/festibalparty/festibal-push-backend/internal/svc/tokensvc"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/httperr"
	"github.com/segmentio/encoding/json"
	"go.opentelemetry.io/otel/trace"
)

type HandlerConfig struct {
	TokenService tokensvc.Service `validate:"required"`
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

type RegisterTokenReq struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type RegisterTokenResp struct {
	Ok      bool   `json:"ok"`
	Warning string `json:"warning,omitempty"`
}

func (h *Handler) Register() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var span trace.Span
		ctx, span = tracer.StartSpan(ctx, "handlertoken.Register")
		defer span.End()

		r = r.WithContext(ctx)

		var reqBody RegisterTokenReq
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&reqBody)
		if err != nil {
			httperr.WriteDecode(w, r, err)
			return
		}

		registerIn := tokensvc.InputRegister{
			Token:    reqBody.Token,
			Platform: reqBody.Platform,
		}

		registerOut, err := h.Config.TokenService.Register(ctx, registerIn)
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		respBody := RegisterTokenResp{
			Ok:      true,
			Warning: registerOut.Warning,
		}

		respbuilder.WriteJSON(http.StatusOK, w, r, respBody)
	}
}
