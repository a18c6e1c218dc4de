package common

import (
	"context"
	"time"

	"flightdesk/scheduler/internal/config"
	"flightdesk/scheduler/internal/logging"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client for the shared rate-limit counters. A failed
// ping is logged only; the pool keeps trying to reconnect.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	logging.Info("Initializing Redis client", "addr", cfg.Addr(), "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("Failed to ping Redis", "error", err)
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
