package api

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"
	"github.com/satori/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/festibalparty/festibal-push-backend/assets"
	"github.com/festibalparty/festibal-push-backend/assets/migrations/pgsql"
	"github.com/festibalparty/festibal-push-backend/config"
	"github.com/festibalparty/festibal-push-backend/container"
	"github.com/festibalparty/festibal-push-backend/internal/svc/newssvc"
	"github.com/festibalparty/festibal-push-backend/internal/svc/pushsvc"
	"github.com/festibalparty/festibal-push-backend/internal/svc/tokensvc"
	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
	"github.com/festibalparty/festibal-push-backend/pkg/logger"
	"github.com/festibalparty/festibal-push-backend/pkg/migration"
	"github.com/festibalparty/festibal-push-backend/transport/restapi"
)

const (
	ExitSuccess = 0
	ExitErr     = -1
)

type Cmd struct {
	flags      *flag.FlagSet
	appName    string
	appVersion string
	configFile string
}

func NewCmd(appName, appVersion string) func() (cli.Command, error) {
	return func() (cli.Command, error) {
		cmd := &Cmd{
			flags:      &flag.FlagSet{},
			appName:    appName,
			appVersion: appVersion,
		}
		err := cmd.init()
		return cmd, err
	}
}

var _ cli.Command = (*Cmd)(nil)
var _ cli.CommandFactory = NewCmd("", "")

func (c *Cmd) init() error {
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.StringVar(&c.configFile, "config", "config.yml",
		"Config file to load")
	c.flags.StringVar(&c.configFile, "c", "config.yml",
		"Alias for config file to load")
	return nil
}

func (c *Cmd) Help() string {
	return `Start the notification relay HTTP server`
}

func (c *Cmd) Synopsis() string {
	return `Start the notification relay HTTP server`
}

func (c *Cmd) Run(args []string) int {
	err := c.flags.Parse(args)
	if err != nil {
		log.Printf("error parsing arguments: %s", err)
		return ExitErr
	}

	// ** define system context
	ctx := logger.Inject(context.Background(), logger.Tracer{
		RemoteAddr: "system",
		AppTraceID: uuid.NewV4().String(),
	})

	// ** load config file
	configVal := &config.Config{}
	zapLog, err := config.Setup(c.configFile, configVal)
	if err != nil {
		log.Printf("error load config: %s", err)
		return ExitErr
	}

	// ** set global logger
	logger.SetGlobalLogger(logger.NewZap(zapLog))

	// ** register global tracer provider, spans stay in-process until an
	// exporter is attached
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(assets.ServiceName),
			semconv.ServiceVersionKey.String(c.appVersion),
		)),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	defer func() {
		if _err := tracerProvider.Shutdown(ctx); _err != nil {
			logger.Error(ctx, "~ error shutdown tracer provider", logger.KV("error", _err))
		}
	}()

	logger.Info(ctx, "~ setup container")
	defaultContainer, err := container.Setup(ctx, configVal, zapLog)
	if err != nil {
		logger.Error(ctx, "~ error setup container", logger.KV("error", err))
		return ExitErr
	}

	defer func() {
		logger.Info(ctx, "~ closing container")
		if _err := defaultContainer.Close(); _err != nil {
			logger.Error(ctx, "~ error close container", logger.KV("error", _err))
		}
	}()

	// ** create tables once at boot, never during request handling
	if dbConn := defaultContainer.DB(); dbConn != nil {
		logger.Info(ctx, "~ running database migrations")
		immigration, err := migration.NewSQLImmigration(ctx, migration.SQLImmigrationConfig{
			Dialect:        "postgres",
			DB:             dbConn.DB,
			MigrationTable: "festibal_migrations",
			Migrations: []migration.Migrate{
				pgsql.CreateExpoTokensTable1708421133{},
				pgsql.CreateNewsItemsTable1708421201{},
			},
		})
		if err != nil {
			logger.Error(ctx, "~ error prepare migrations", logger.KV("error", err))
			return ExitErr
		}

		if err := immigration.Up(); err != nil {
			logger.Error(ctx, "~ error run migrations", logger.KV("error", err))
			return ExitErr
		}
	}

	// ** START DEPENDENCIES
	logger.Info(ctx, "~ starting up dependencies")
	logger.Info(ctx, "~~ preparing token repo",
		logger.KV("tokenStore", configVal.TokenStore),
	)
	tokenRepo, err := defaultContainer.TokenRepo()
	if err != nil {
		logger.Error(ctx, "~~ error prepare token repo", logger.KV("error", err))
		return ExitErr
	}

	logger.Info(ctx, "~~ preparing news repo")
	newsRepo, err := defaultContainer.NewsRepo()
	if err != nil {
		logger.Error(ctx, "~~ error prepare news repo", logger.KV("error", err))
		return ExitErr
	}

	// ** PREPARE CLIENTS
	logger.Info(ctx, "~~ prepare push delivery client")
	pushEndpoint := configVal.PushDelivery.Endpoint
	if pushEndpoint == "" {
		pushEndpoint = expopush.DefaultEndpoint
	}

	pushClient, err := expopush.NewClient(expopush.ClientDefaultConfig{
		Endpoint: pushEndpoint,
	})
	if err != nil {
		logger.Error(ctx, "~~ push delivery client error", logger.KV("error", err))
		return ExitErr
	}

	// ** START SERVICES
	logger.Info(ctx, "~ setting up services")
	logger.Info(ctx, "~~ token service")
	tokenService, err := tokensvc.New(tokensvc.DefaultServiceConfig{
		TokenRepo: tokenRepo,
	})
	if err != nil {
		logger.Error(ctx, "~~ setting up token service error", logger.KV("error", err))
		return ExitErr
	}

	logger.Info(ctx, "~~ news service")
	newsService, err := newssvc.New(newssvc.DefaultServiceConfig{
		NewsRepo: newsRepo,
	})
	if err != nil {
		logger.Error(ctx, "~~ setting up news service error", logger.KV("error", err))
		return ExitErr
	}

	logger.Info(ctx, "~~ push service")
	pushService, err := pushsvc.New(pushsvc.DefaultServiceConfig{
		PushClient: pushClient,
		TokenRepo:  tokenRepo,
	})
	if err != nil {
		logger.Error(ctx, "~~ setting up push service error", logger.KV("error", err))
		return ExitErr
	}

	// ** HTTP TRANSPORT
	logger.Info(ctx, "~ prepare http transport")
	server, err := restapi.NewHTTPTransport(restapi.Config{
		AppServiceName: c.appName,
		AppVersion:     c.appVersion,
		TokenService:   tokenService,
		NewsService:    newsService,
		PushService:    pushService,
	})
	if err != nil {
		logger.Error(ctx, "~ prepare http transport error", logger.KV("error", err))
		return ExitErr
	}

	httpPort := fmt.Sprintf(":%d", configVal.Transport.HTTP.Port)
	logger.Info(ctx, fmt.Sprintf("~ http transport is up on port %s", httpPort))

	httpServer := &http.Server{
		Addr:    httpPort,
		Handler: server.Server(),
	}

	var apiErrChan = make(chan error, 1)
	go func() {
		apiErrChan <- httpServer.ListenAndServe()
	}()

	// ** listen for sigterm signal
	var signalChan = make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-signalChan:
		logger.Info(ctx, "exiting http server")
		if _err := httpServer.Shutdown(ctx); _err != nil {
			logger.Error(ctx, "error shutdown", logger.KV("error", _err))
		}

	case err := <-apiErrChan:
		if err != nil {
			logger.Error(ctx, "error HTTP API", logger.KV("error", err))
		}
	}

	return ExitSuccess
}
