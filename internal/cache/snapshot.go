// Package cache holds the last known snapshot of each entity collection.
// Snapshots are non-authoritative mirrors: a later remote read silently
// replaces whatever is stored, and readers treat any cache failure as a miss.
package cache

import (
	"context"
)

// Snapshot keys, one record per collection plus the config singleton.
const (
	KeyConfig     = "snapshot:config"
	KeyPlans      = "snapshot:plans"
	KeyUsers      = "snapshot:users"
	KeyPosts      = "snapshot:posts"
	KeyCategories = "snapshot:categories"
)

type SnapshotStore interface {
	// Get unmarshals the stored snapshot into out. A miss or a storage
	// failure both report (false, nil) to the caller's fallback logic;
	// only decode errors are returned.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set overwrites the snapshot wholesale.
	Set(ctx context.Context, key string, value any) error

	Delete(ctx context.Context, key string) error
}
