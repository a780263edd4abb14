package tokenrepo_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

func newRedisRepo(t *testing.T) *tokenrepo.RepoRedis {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	repo, err := tokenrepo.Redis(tokenrepo.RepoRedisConfig{Client: client})
	require.NoError(t, err)
	return repo
}

func TestRepoRedis_Config(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		repo, err := tokenrepo.Redis(tokenrepo.RepoRedisConfig{})
		assert.Error(t, err)
		assert.Nil(t, repo)
	})
}

func TestRepoRedis_UpsertToken(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then re-register keeps one record", func(t *testing.T) {
		repo := newRedisRepo(t)

		first, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "ios"))
		assert.NoError(t, err)
		assert.NotZero(t, first.ID)

		second, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "android"))
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
		assert.Equal(t, "android", second.Platform)

		tokens, err := repo.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Len(t, tokens, 1)
	})

	t.Run("empty platform keeps previous", func(t *testing.T) {
		repo := newRedisRepo(t)

		_, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", "ios"))
		assert.NoError(t, err)

		updated, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[abc]", ""))
		assert.NoError(t, err)
		assert.Equal(t, "ios", updated.Platform)
	})
}

func TestRepoRedis_GetTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every registered token", func(t *testing.T) {
		repo := newRedisRepo(t)

		_, err := repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[aaa]", "ios"))
		assert.NoError(t, err)

		_, err = repo.UpsertToken(ctx, tokenrepo.NewPushToken("ExponentPushToken[bbb]", "android"))
		assert.NoError(t, err)

		tokens, err := repo.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Len(t, tokens, 2)
	})
}
