package tokenrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/encoding/json"
	"github.com/sony/sonyflake"

	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/festibalparty/festibal-push-backend/storage"
)

const redisTokenHashKey = "expo_tokens"

type RepoRedisConfig struct {
	Client redis.UniversalClient `validate:"required"`
}

// RepoRedis keeps the token set in one redis hash, field = token value,
// value = JSON-encoded record. Upsert reads the prior record first so the
// merge semantics match the SQL implementation; the last concurrent writer
// for the same token wins, same as the database upsert.
type RepoRedis struct {
	Config RepoRedisConfig
	idGen  *sonyflake.Sonyflake
}

var _ Repo = (*RepoRedis)(nil)

func Redis(conf RepoRedisConfig) (*RepoRedis, error) {
	err := validator.Validate(conf)
	if err != nil {
		return nil, err
	}

	return &RepoRedis{
		Config: conf,
		idGen: sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		}),
	}, nil
}

func (r *RepoRedis) UpsertToken(ctx context.Context, token PushToken) (upserted PushToken, err error) {
	if token.Token == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrTokenRequired)
		return
	}

	prevRaw, err := r.Config.Client.HGet(ctx, redisTokenHashKey, token.Token).Result()
	switch {
	case err == redis.Nil:
		var id uint64
		id, err = r.idGen.NextID()
		if err != nil {
			err = fmt.Errorf("generate token id error: %w", err)
			return
		}

		token.ID = int64(id)
		upserted = token

	case err != nil:
		err = fmt.Errorf("redis get token error: %w", err)
		return

	default:
		var existing PushToken
		if err = json.Unmarshal([]byte(prevRaw), &existing); err != nil {
			err = fmt.Errorf("corrupt token record for '%s': %w", token.Token, err)
			return
		}

		upserted = token.Merge(existing)
	}

	encoded, err := json.Marshal(upserted)
	if err != nil {
		err = fmt.Errorf("marshal token record error: %w", err)
		return
	}

	err = r.Config.Client.HSet(ctx, redisTokenHashKey, token.Token, string(encoded)).Err()
	if err != nil {
		err = fmt.Errorf("redis set token error: %w", err)
	}

	return
}

func (r *RepoRedis) GetTokens(ctx context.Context) (tokens []PushToken, err error) {
	raw, err := r.Config.Client.HGetAll(ctx, redisTokenHashKey).Result()
	if err != nil {
		err = fmt.Errorf("redis list tokens error: %w", err)
		return
	}

	tokens = make([]PushToken, 0, len(raw))
	for field, encoded := range raw {
		var token PushToken
		if err = json.Unmarshal([]byte(encoded), &token); err != nil {
			err = fmt.Errorf("corrupt token record for '%s': %w", field, err)
			return
		}

		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
	})

	return
}
