package container

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/festibalparty/festibal-push-backend/config"
	"github.com/festibalparty/festibal-push-backend/storage/newsrepo"
	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

// Container hands out the repositories the use-case layer needs. A nil repo
// with nil error means the capability is deliberately not configured.
type Container interface {
	TokenRepo() (tokenrepo.Repo, error)
	NewsRepo() (newsrepo.Repo, error)
}

// DefaultContainerImpl is the real implementation of Container. It owns the
// database and redis connections for the whole process lifetime.
type DefaultContainerImpl struct {
	ctx       context.Context
	cfg       *config.Config
	dbConn    *sqlx.DB              // nil when the persistent store is not configured
	redisConn redis.UniversalClient // nil unless tokenStore is redis
	memTokens *tokenrepo.RepoMemory // one shared instance per container
}

var _ Container = (*DefaultContainerImpl)(nil)

// Setup initializes all configured dependencies. It returns the concrete type
// so the caller can Close it in deferred mode.
func Setup(ctx context.Context, conf *config.Config, zapLog *zap.Logger) (*DefaultContainerImpl, error) {
	dep := &DefaultContainerImpl{
		ctx: ctx,
		cfg: conf,
	}

	if conf.Database.DSN != "" && !conf.Database.Disable {
		dbConn, err := connectSQL(ctx, conf.Database, zapLog)
		if err != nil {
			return nil, err
		}

		dep.dbConn = dbConn
	}

	switch conf.TokenStore {
	case config.TokenStoreMemory:
		dep.memTokens = tokenrepo.Memory()

	case config.TokenStoreRedis:
		redisConn, err := connectRedis(ctx, conf.Redis)
		if err != nil {
			if _err := dep.Close(); _err != nil {
				err = fmt.Errorf("%w: close error: %s", err, _err)
			}

			return nil, err
		}

		dep.redisConn = redisConn

	case config.TokenStorePostgres:
		if dep.dbConn == nil {
			err := fmt.Errorf("token store is postgres but no database dsn is configured")
			return nil, err
		}
	}

	return dep, nil
}

// DB exposes the raw connection for the migration runner. Nil when the
// persistent store is not configured.
func (a *DefaultContainerImpl) DB() *sqlx.DB {
	return a.dbConn
}

func (a *DefaultContainerImpl) TokenRepo() (tokenrepo.Repo, error) {
	switch a.cfg.TokenStore {
	case config.TokenStoreNone, "":
		return nil, nil

	case config.TokenStoreMemory:
		return a.memTokens, nil

	case config.TokenStoreRedis:
		return tokenrepo.Redis(tokenrepo.RepoRedisConfig{
			Client: a.redisConn,
		})

	case config.TokenStorePostgres:
		return tokenrepo.Postgres(tokenrepo.RepoPostgresConfig{
			Connection: a.dbConn,
		})

	default:
		return nil, fmt.Errorf("unknown token store '%s'", a.cfg.TokenStore)
	}
}

func (a *DefaultContainerImpl) NewsRepo() (newsrepo.Repo, error) {
	if a.dbConn == nil {
		return nil, nil
	}

	return newsrepo.Postgres(newsrepo.RepoPostgresConfig{
		Connection: a.dbConn,
	})
}

// Close will close all dependencies.
func (a *DefaultContainerImpl) Close() error {
	var err error
	if a.dbConn != nil {
		if _err := a.dbConn.Close(); _err != nil {
			err = multierr.Append(err, fmt.Errorf("close db error: %w", _err))
		}
	}

	if a.redisConn != nil {
		if _err := a.redisConn.Close(); _err != nil {
			err = multierr.Append(err, fmt.Errorf("close redis error: %w", _err))
		}
	}

	return err
}
