package tokensvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festibalparty/festibal-push-backend/internal/svc/tokensvc"
	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

func TestDefaultService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		svc, err := tokensvc.New(tokensvc.DefaultServiceConfig{TokenRepo: tokenrepo.Memory()})
		require.NoError(t, err)

		_, err = svc.Register(ctx, tokensvc.InputRegister{Platform: "ios"})
		assert.Error(t, err)
	})

	t.Run("no store accepts with warning", func(t *testing.T) {
		svc, err := tokensvc.New(tokensvc.DefaultServiceConfig{})
		require.NoError(t, err)

		out, err := svc.Register(ctx, tokensvc.InputRegister{Token: "ExponentPushToken[abc]", Platform: "ios"})
		assert.NoError(t, err)
		assert.Nil(t, out.Token)
		assert.NotEmpty(t, out.Warning)
	})

	t.Run("persists and returns the record", func(t *testing.T) {
		repo := tokenrepo.Memory()
		svc, err := tokensvc.New(tokensvc.DefaultServiceConfig{TokenRepo: repo})
		require.NoError(t, err)

		out, err := svc.Register(ctx, tokensvc.InputRegister{Token: "ExponentPushToken[abc]", Platform: "ios"})
		assert.NoError(t, err)
		assert.Empty(t, out.Warning)
		require.NotNil(t, out.Token)
		assert.Equal(t, "ExponentPushToken[abc]", out.Token.Token)
		assert.Equal(t, "ios", out.Token.Platform)

		tokens, err := repo.GetTokens(ctx)
		assert.NoError(t, err)
		assert.Len(t, tokens, 1)
	})

	t.Run("re-register updates in place", func(t *testing.T) {
		repo := tokenrepo.Memory()
		svc, err := tokensvc.New(tokensvc.DefaultServiceConfig{TokenRepo: repo})
		require.NoError(t, err)

		first, err := svc.Register(ctx, tokensvc.InputRegister{Token: "ExponentPushToken[abc]", Platform: "ios"})
		require.NoError(t, err)

		second, err := svc.Register(ctx, tokensvc.InputRegister{Token: "ExponentPushToken[abc]", Platform: "android"})
		assert.NoError(t, err)
		assert.Equal(t, first.Token.ID, second.Token.ID)
		assert.Equal(t, "android", second.Token.Platform)
	})
}
