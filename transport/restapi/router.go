package restapi

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/festibalparty/festibal-push-backend/assets"
	"github.com/festibalparty/festibal-push-backend/internal/svc/newssvc"
	"github.com/festibalparty/festibal-push-backend/internal/svc/pushsvc"
	"github.com/festibalparty/festibal-push-backend/internal/svc/tokensvc"
	"github.com/festibalparty/festibal-push-backend/pkg/respbuilder"
	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/handlernews"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/handlerpush"
	"github.com/festibalparty/festibal-push-backend/transport/restapi/handlertoken"
	"go.opentelemetry.io/otel"
)

type Config struct {
	AppServiceName string           `validate:"required"`
	AppVersion     string           `validate:"required"`
	TokenService   tokensvc.Service `validate:"required"`
	NewsService    newssvc.Service  `validate:"required"`
	PushService    pushsvc.Service  `validate:"required"`
}

type DefaultHTTP struct {
	config Config
	router *chi.Mux
}

func NewHTTPTransport(cfg Config) (*DefaultHTTP, error) {
	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("http transport cfg error: %w", err)
	}

	handlerToken, err := handlertoken.NewHandler(handlertoken.HandlerConfig{
		TokenService: cfg.TokenService,
	})
	if err != nil {
		return nil, err
	}

	handlerNews, err := handlernews.NewHandler(handlernews.HandlerConfig{
		NewsService: cfg.NewsService,
	})
	if err != nil {
		return nil, err
	}

	handlerPush, err := handlerpush.NewHandler(handlerpush.HandlerConfig{
		PushService: cfg.PushService,
	})
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	skip := func(r *http.Request) bool {
		switch strings.TrimSpace(path.Clean(r.URL.Path)) {
		case "/", "/health", "/ping":
			return true
		}

		return false
	}

	router.Use(middleware.StripSlashes)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Tracer-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Use(func(next http.Handler) http.Handler {
		return tracer.Middleware(tracer.MiddlewareConfig{
			TracerName:     "github.com/festibalparty/festibal-push-backend",
			ServiceName:    assets.ServiceName,
			SkipFunc:       skip,
			TracerProvider: otel.GetTracerProvider(),
			TextPropagator: otel.GetTextMapPropagator(),
		}, next)
	})

	// add trace id and also log request response
	router.Use(func(next http.Handler) http.Handler {
		return requestLogger(skip, next)
	})

	instance := &DefaultHTTP{
		config: cfg,
		router: router,
	}

	router.Get("/", instance.health())

	router.Route("/news", func(r chi.Router) {
		r.Get("/", handlerNews.List())
		r.Post("/", handlerNews.Create())
	})

	router.Post("/register-token", handlerToken.Register())
	router.Post("/broadcast", handlerPush.Broadcast())
	router.Post("/send-notification", handlerPush.Send())

	return instance, nil
}

type healthResp struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

func (a *DefaultHTTP) health() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respbuilder.WriteJSON(http.StatusOK, w, r, healthResp{
			Ok:      true,
			Message: fmt.Sprintf("%s %s up and running", a.config.AppServiceName, a.config.AppVersion),
		})
	}
}

// Server .
func (a *DefaultHTTP) Server() http.Handler {
	return a.router
}
