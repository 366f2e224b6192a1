package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crosscast/infrastructure/configuration"
	"crosscast/infrastructure/logger"
)

// NewCache connects to Redis. Returns an error instead of a dead client so
// callers can decide to run without caching.
func NewCache(cfg configuration.RedisClient) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.GetLogger().WithField("host", cfg.Host).Info("Connected to Redis")
	return client, nil
}
