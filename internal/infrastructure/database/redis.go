package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/heartline-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

const defaultRedisDialTimeout = 2 * time.Second

// NewRedisClient opens the client behind the profile cache and checks it
// answers within the dial timeout. Cache reads and writes share OpTimeout so
// a slow node degrades to database reads instead of stalling requests.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultRedisDialTimeout
	}

	client := redis.NewClient(redisOptions(cfg, dialTimeout))

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	return client, nil
}

func redisOptions(cfg *config.RedisConfig, dialTimeout time.Duration) *redis.Options {
	return &redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		// The cache is best effort; a failed command falls back to Postgres
		// rather than being retried.
		MaxRetries: -1,
	}
}
