package tokenrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/festibalparty/festibal-push-backend/storage"
	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

func TestRepoMemory_UpsertToken(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		repo := tokenrepo.Memory()

		_, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("", "ios"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("insert then re-register", func(t *testing.T) {
		repo := tokenrepo.Memory()

		first, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "ios"))
		assert.NoError(t, err)
		assert.NotZero(t, first.ID)
		assert.Equal(t, "ios", first.Platform)

		second, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "android"))
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "android", second.Platform)
		assert.True(t, second.LastSeenAt.After(first.LastSeenAt) || second.LastSeenAt.Equal(first.LastSeenAt))

		// still exactly one record
		tokens, err := repo.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Len(t, tokens, 1)
	})

	t.Run("re-register with empty platform keeps previous", func(t *testing.T) {
		repo := tokenrepo.Memory()

		_, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "ios"))
		assert.NoError(t, err)

		updated, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", ""))
		assert.NoError(t, err)
		assert.Equal(t, "ios", updated.Platform)
	})
}

func TestRepoMemory_GetTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		repo := tokenrepo.Memory()

		tokens, err := repo.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("independent instances", func(t *testing.T) {
		repoA := tokenrepo.Memory()
		repoB := tokenrepo.Memory()

		_, err := repoA.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", ""))
		assert.NoError(t, err)

		tokens, err := repoB.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Empty(t, tokens)
	})
}
