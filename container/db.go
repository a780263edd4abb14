package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zapadapter"
	"go.uber.org/zap"

	"github.com/festibalparty/festibal-push-backend/config"
)

// connectSQL opens one pooled Postgres connection. When debug is enabled every
// statement goes through the sql logger before hitting the wire.
func connectSQL(ctx context.Context, conf config.Database, zapLog *zap.Logger) (*sqlx.DB, error) {
	var dbConn *sqlx.DB
	if conf.Debug && zapLog != nil {
		loggedDB := sqldblogger.OpenDriver(conf.DSN, &pq.Driver{}, zapadapter.New(zapLog))
		dbConn = sqlx.NewDb(loggedDB, "postgres")
	} else {
		var err error
		dbConn, err = sqlx.Open("postgres", conf.DSN)
		if err != nil {
			return nil, fmt.Errorf("cannot open db connection: %w", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := dbConn.PingContext(pingCtx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("cannot ping db: %w", err)
	}

	return dbConn, nil
}
