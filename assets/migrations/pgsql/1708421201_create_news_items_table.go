package pgsql

import (
	"context"
	"fmt"

	"github.com/festibalparty/festibal-push-backend/pkg/tracer"
)

// CreateNewsItemsTable1708421201 is struct to define a migration with ID 1708421201_create_news_items_table
type CreateNewsItemsTable1708421201 struct{}

func (m CreateNewsItemsTable1708421201) ID(ctx context.Context) string {
	_, span := tracer.StartSpan(ctx, "CreateNewsItemsTable1708421201.ID")
	defer span.End()

	return fmt.Sprintf("%d_%s.sql", 1708421201, "create_news_items_table")
}

func (m CreateNewsItemsTable1708421201) SequenceNumber(ctx context.Context) int {
	_, span := tracer.StartSpan(ctx, "CreateNewsItemsTable1708421201.SequenceNumber")
	defer span.End()

	return 1708421201
}

func (m CreateNewsItemsTable1708421201) Up(ctx context.Context) (sql string, err error) {
	_, span := tracer.StartSpan(ctx, "CreateNewsItemsTable1708421201.Up")
	defer span.End()

	sql = `
CREATE TABLE IF NOT EXISTS news_items (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);
`

	return
}

func (m CreateNewsItemsTable1708421201) Down(ctx context.Context) (sql string, err error) {
	_, span := tracer.StartSpan(ctx, "CreateNewsItemsTable1708421201.Down")
	defer span.End()

	sql = `DROP TABLE IF EXISTS news_items;`
	return
}
