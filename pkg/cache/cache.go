// Package cache stores results of expensive searches between runs.
//
// Values are opaque byte slices addressed by string keys. Keys are built by
// [TilingKey] from content digests, so a changed input image can never hit
// a stale entry.
//
// Two implementations are provided: [FileCache] for the CLI, which keeps
// entries under the user's cache directory, and [NullCache], which stores
// nothing and is used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLTiling is how long a cached pack search result stays valid.
const TTLTiling = 30 * 24 * time.Hour

// Cache is a key-value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired and
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
