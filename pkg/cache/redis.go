package cache

import (
	"context"
	"fmt"
	"time"

	"ticket-office/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the client used by the rate limiter. Returns nil when
// no address is configured; callers treat a nil client as "limiter off".
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return rdb, nil
}
