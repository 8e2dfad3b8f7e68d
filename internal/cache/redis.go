package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/harborbay/boathouse-scheduler/internal/config"
)

// NewRedisClient connects to Redis when an address is configured.
// A nil return disables caching; callers degrade to computing every
// request rather than failing startup.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
