// Package cache stores generated layouts so repeated requests for the same
// layout, size and options skip regeneration.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used when MISSIONLAYOUT_REDIS_URL is set
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the layout name, the
// requested size and the options bag; [ScopedKeyer] prefixes another keyer so
// several tools can share one backend without collisions.
package cache

import (
	"context"
	"time"
)

// Cache TTLs. Layouts are pure functions of their inputs, so expiry only
// bounds disk and memory use.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was present.
	// A missing or expired key is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
