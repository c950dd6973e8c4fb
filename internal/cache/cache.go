package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/aerovoyage/internal/catalog"
)

// DefaultTTL is how long a cached catalog snapshot lives.
const DefaultTTL = time.Hour

// snapshotKey is versioned so a schema change can't read an old payload.
const snapshotKey = "aerovoyage:catalog:v1"

// Cache wraps a Redis client and stores the catalog snapshot as JSON.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to DefaultTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get retrieves the cached catalog snapshot.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context) (*catalog.Snapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get catalog: %w", err)
	}

	var snap catalog.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling cached catalog: %w", err)
	}

	return &snap, nil
}

// Set stores the snapshot with the configured TTL. A nil snapshot is a no-op.
func (c *Cache) Set(ctx context.Context, snap *catalog.Snapshot) error {
	if snap == nil {
		return nil
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling catalog snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set catalog: %w", err)
	}

	return nil
}

// Delete drops the cached snapshot so the next load reads the store.
func (c *Cache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("cache delete catalog: %w", err)
	}
	return nil
}
