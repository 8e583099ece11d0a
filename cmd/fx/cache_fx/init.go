package cache_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"anuncia/internal/cache"
	"anuncia/internal/config"
)

var Module = fx.Provide(provideSnapshots)

// provideSnapshots prefers Redis and degrades to the in-process store when no
// address is configured or the server cannot be reached at startup.
func provideSnapshots(cfg *config.Config) cache.SnapshotStore {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory snapshots")
		return cache.NewMemorySnapshots()
	}

	snapshots, err := cache.NewRedisSnapshots(context.Background(), cfg)
	if err != nil {
		log.Printf("redis unavailable, using in-memory snapshots: %v", err)
		return cache.NewMemorySnapshots()
	}
	return snapshots
}
