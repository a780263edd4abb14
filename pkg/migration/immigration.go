package migration

import "context"

// Immigration runs migrations Up (to latest) or Down (rollback).
type Immigration interface {
	Up() error
	Down() error
}

// Migrate is one migration to run.
type Migrate interface {
	// ID returns the unique identifier of the migration, prefixed by number.
	ID(ctx context.Context) string

	// SequenceNumber must be unique and monotonic to order migrations.
	SequenceNumber(ctx context.Context) int

	// Up returns the sql to sync the database forward.
	Up(ctx context.Context) (sql string, err error)

	// Down returns the sql to rollback.
	Down(ctx context.Context) (sql string, err error)
}
