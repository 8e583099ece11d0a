package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"anuncia/internal/config"
)

type RedisSnapshots struct {
	db *redis.Client
}

func NewRedisSnapshots(ctx context.Context, cfg *config.Config) (*RedisSnapshots, error) {
	const op = "cache.NewRedisSnapshots"

	db := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RedisTimeout,
		ReadTimeout:  cfg.RedisTimeout,
		WriteTimeout: cfg.RedisTimeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisSnapshots{db: db}, nil
}

func (c *RedisSnapshots) Get(ctx context.Context, key string, out any) (bool, error) {
	val, err := c.db.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		// Unreachable cache is a miss, not an error.
		log.Printf("snapshot cache get %s: %v", key, err)
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("cache.Get %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisSnapshots) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	// Snapshots have no TTL: a stale snapshot is still the best available
	// answer when the backend is down.
	return c.db.Set(ctx, key, data, 0).Err()
}

func (c *RedisSnapshots) Delete(ctx context.Context, key string) error {
	return c.db.Del(ctx, key).Err()
}
