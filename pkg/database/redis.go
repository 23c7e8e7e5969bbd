package database

import (
	"context"
	"fmt"

	"github.com/amd4k/ZHV/pkg/config"
	"github.com/redis/go-redis/v9"
)

// OpenRedis connects to the rate limiter backend. It returns a nil client
// when no address is configured.
func OpenRedis(ctx context.Context, redisConfig *config.RedisConfig) (*redis.Client, error) {
	if redisConfig.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisConfig.Addr, err)
	}
	return client, nil
}
