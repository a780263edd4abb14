package pgsql

import (
	"context"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
)

// CreateExpoTokensTable1708421133 is struct to define a migration with ID 1708421133_create_expo_tokens_table
type CreateExpoTokensTable1708421133 struct{}

// ID returns the unique identifier of this migration. The prefix is the unix time when it was created.
func (m CreateExpoTokensTable1708421133) ID(ctx context.Context) string {
	_, span := tracer.StartSpan(ctx, "CreateExpoTokensTable1708421133.ID")
	defer span.End()

	return fmt.Sprintf("%d_%s.sql", 1708421133, "create_expo_tokens_table")
}

// SequenceNumber returns the creation time, useful to see the migration status.
func (m CreateExpoTokensTable1708421133) SequenceNumber(ctx context.Context) int {
	_, span := tracer.StartSpan(ctx, "CreateExpoTokensTable1708421133.SequenceNumber")
	defer span.End()

	return 1708421133
}

// Up returns the sql migration to sync the database.
func (m CreateExpoTokensTable1708421133) Up(ctx context.Context) (sql string, err error) {
	_, span := tracer.StartSpan(ctx, "CreateExpoTokensTable1708421133.Up")
	defer span.End()

	sql = `
CREATE TABLE IF NOT EXISTS expo_tokens (
	id BIGSERIAL PRIMARY KEY,
	token VARCHAR NOT NULL,
	platform VARCHAR NOT NULL DEFAULT '',
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	last_seen_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS unique_idx_expo_tokens_token ON expo_tokens (token);
`

	return
}

// Down returns the sql migration to rollback the database.
func (m CreateExpoTokensTable1708421133) Down(ctx context.Context) (sql string, err error) {
	_, span := tracer.StartSpan(ctx, "CreateExpoTokensTable1708421133.Down")
	defer span.End()

	sql = `DROP TABLE IF EXISTS expo_tokens;`
	return
}
