package container

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/festibalparty/festibal-push-backend/config"
)

func connectRedis(ctx context.Context, conf config.Redis) (redis.UniversalClient, error) {
	if conf.Addr == "" {
		return nil, fmt.Errorf("redis addr is required when token store is redis")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cannot ping redis '%s': %w", conf.Addr, err)
	}

	return client, nil
}
