package database

import (
	"context"
	"fmt"
	"time"

	"swap-service/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects to Redis. A nil client is returned on failure: the
// service runs without the snapshot cache rather than refusing to start.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
