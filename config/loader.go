package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const defaultHTTPPort = 3000

// Setup loads the YAML config file, applies environment overrides and returns
// the zap logger the rest of boot should use. A missing config file is not an
// error, the service can run from environment variables alone.
func Setup(configFile string, cfg *Config) (*zap.Logger, error) {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:        "ts",
			MessageKey:     "msg",
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			LineEnding:     zapcore.DefaultLineEnding,
			LevelKey:       "level",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
		}),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)),
		zapcore.DebugLevel,
	)

	log := zap.New(core)

	fileContent, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
		// env-only mode

	case err != nil:
		return log, fmt.Errorf("error read file config %s: %w", configFile, err)

	default:
		dec := yaml.NewDecoder(bytes.NewReader(fileContent))
		dec.KnownFields(false)
		if err := dec.Decode(cfg); err != nil {
			return log, fmt.Errorf("error decode file config %s: %w", configFile, err)
		}
	}

	applyEnv(cfg)

	if cfg.Transport.HTTP.Port == 0 {
		cfg.Transport.HTTP.Port = defaultHTTPPort
	}

	if cfg.TokenStore == "" {
		cfg.TokenStore = TokenStoreNone
		if cfg.Database.DSN != "" && !cfg.Database.Disable {
			cfg.TokenStore = TokenStorePostgres
		}
	}

	if err := validator.Validate(cfg); err != nil {
		return log, fmt.Errorf("config validation error: %w", err)
	}

	return log, nil
}

func applyEnv(cfg *Config) {
	if port, ok := os.LookupEnv("PORT"); ok {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Transport.HTTP.Port = p
		}
	}

	if dsn, ok := os.LookupEnv("DATABASE_URL"); ok {
		cfg.Database.DSN = dsn
	}

	if addr, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.Redis.Addr = addr
	}

	if store, ok := os.LookupEnv("TOKEN_STORE"); ok {
		cfg.TokenStore = store
	}

	if endpoint, ok := os.LookupEnv("EXPO_PUSH_URL"); ok {
		cfg.PushDelivery.Endpoint = endpoint
	}
}
