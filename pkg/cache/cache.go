// Package cache provides byte-level caching for computed audit results.
//
// The [Cache] interface has three backends:
//   - [FileCache]: file-based storage for CLI usage (XDG cache dir)
//   - [RedisCache]: Redis-backed storage for the HTTP server
//   - [NullCache]: no-op cache when caching is disabled
//
// Keys are opaque strings; callers typically derive them with [Hash] from
// the inputs that determine the cached value (workspace root, manifest
// filename).
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
