package newsrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/festibalparty/festibal-push-backend/storage"
	"github.com/festibalparty/festibal-push-backend/storage/newsrepo"
)

func TestRepoMemory_CreateNews(t *testing.T) {
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		repo := newsrepo.Memory()

		_, err := repo.CreateNews(ctx, newsrepo.NewNewsItem("", "message"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("missing message", func(t *testing.T) {
		repo := newsrepo.Memory()

		_, err := repo.CreateNews(ctx, newsrepo.NewNewsItem("title", ""))
		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("assigns sequential ids", func(t *testing.T) {
		repo := newsrepo.Memory()

		first, err := repo.CreateNews(ctx, newsrepo.NewNewsItem("T1", "M1"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), first.ID)

		second, err := repo.CreateNews(ctx, newsrepo.NewNewsItem("T2", "M2"))
		assert.NoError(t, err)
		assert.Equal(t, int64(2), second.ID)
	})
}

func TestRepoMemory_ListNews(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		repo := newsrepo.Memory()

		older := newsrepo.NewNewsItem("old", "first post")
		older.CreatedAt = time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
		_, err := repo.CreateNews(ctx, older)
		assert.NoError(t, err)

		newer := newsrepo.NewNewsItem("new", "second post")
		newer.CreatedAt = time.Date(2023, 5, 2, 10, 0, 0, 0, time.UTC)
		_, err = repo.CreateNews(ctx, newer)
		assert.NoError(t, err)

		items, err := repo.ListNews(ctx)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "new", items[0].Title)
		assert.Equal(t, "old", items[1].Title)
	})

	t.Run("empty list", func(t *testing.T) {
		repo := newsrepo.Memory()

		items, err := repo.ListNews(ctx)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}
