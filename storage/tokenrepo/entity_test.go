package tokenrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/festibalparty/festibal-push-backend/storage/tokenrepo"
)

func TestNewPushToken(t *testing.T) {
	t.Run("trims input", func(t *testing.T) {
		token := tokenrepo.NewPushToken("  ExponentPushToken[abc]  ", " ios ")
		assert.Equal(t, "ExponentPushToken[abc]", token.Token)
		assert.Equal(t, "ios", token.Platform)
		assert.False(t, token.CreatedAt.IsZero())
		assert.Equal(t, token.CreatedAt, token.LastSeenAt)
	})
}

func TestPushToken_Merge(t *testing.T) {
	existing := tokenrepo.PushToken{
		ID:         7,
		Token:      "ExponentPushToken[abc]",
		Platform:   "ios",
		CreatedAt:  time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		LastSeenAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("non-empty platform overwrites", func(t *testing.T) {
		incoming := tokenrepo.NewPushToken("ExponentPushToken[abc]", "android")
		merged := incoming.Merge(existing)

		assert.Equal(t, existing.ID, merged.ID)
		assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
		assert.Equal(t, "android", merged.Platform)
		assert.Equal(t, incoming.LastSeenAt, merged.LastSeenAt)
	})

	t.Run("empty platform keeps previous value", func(t *testing.T) {
		incoming := tokenrepo.NewPushToken("ExponentPushToken[abc]", "")
		merged := incoming.Merge(existing)

		assert.Equal(t, "ios", merged.Platform)
		assert.Equal(t, incoming.LastSeenAt, merged.LastSeenAt)
	})
}
