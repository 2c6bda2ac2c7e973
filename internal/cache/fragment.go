// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fragment.go provides a Valkey-backed cache for rendered HTML fragments.
// The gallery shell and each feed page are pure functions of the catalog
// and the cursor, so once rendered they are stored in Valkey and
// subsequent requests skip the DB query and template execution entirely.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// fragmentKeyPrefix is the Valkey key prefix for cached fragments.
	fragmentKeyPrefix = "frag:"

	// DefaultFragmentTTL is how long a rendered fragment stays cached.
	DefaultFragmentTTL = 5 * time.Minute
)

// FragmentCache manages rendered-HTML caching in Valkey. A nil
// *FragmentCache is valid and behaves as a cache that always misses,
// so the server can run without Valkey.
type FragmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFragmentCache creates a fragment cache backed by the given Valkey
// client. A nil client yields a nil cache (all operations no-op).
func NewFragmentCache(client *redis.Client, ttl time.Duration) *FragmentCache {
	if client == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultFragmentTTL
	}
	return &FragmentCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a fragment key. Returns false on miss.
func (fc *FragmentCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if fc == nil {
		return nil, false
	}
	val, err := fc.client.Get(ctx, fragmentKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("fragment cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("fragment cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a fragment key with the configured TTL.
func (fc *FragmentCache) Set(ctx context.Context, key string, html []byte) {
	if fc == nil {
		return
	}
	if err := fc.client.Set(ctx, fragmentKeyPrefix+key, html, fc.ttl).Err(); err != nil {
		slog.Warn("fragment cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single fragment from the cache.
func (fc *FragmentCache) Invalidate(ctx context.Context, key string) {
	if fc == nil {
		return
	}
	if err := fc.client.Del(ctx, fragmentKeyPrefix+key).Err(); err != nil {
		slog.Warn("fragment cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("fragment cache invalidated", "key", key)
}

// InvalidateAll removes all cached fragments by scanning for the prefix.
// Used when the catalog changes, since any feed page could be affected.
func (fc *FragmentCache) InvalidateAll(ctx context.Context) {
	if fc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := fc.client.Scan(ctx, cursor, fragmentKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("fragment cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := fc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("fragment cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("fragment cache fully cleared", "deleted", deleted)
	}
}

// ShellKey returns the cache key for the full app shell.
func ShellKey() string {
	return "_shell"
}

// CursorKey returns the cache key for the feed page after a cursor.
func CursorKey(after int64) string {
	return fmt.Sprintf("after:%d", after)
}
