// Package cache stores rendered SVG documents keyed by their input.
//
// The render transform is referentially transparent, so a cache entry
// never goes stale on its own; TTLs exist only to bound disk and
// memory usage. Backends:
//   - NullCache: no-op, the default when caching is disabled
//   - FileCache: directory of entries for single-machine CLI/service use
//   - RedisCache: shared cache for multi-instance deployments
//   - MongoCache: for deployments that already operate MongoDB
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"
)

// Cache is the interface implemented by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key derives the cache key for a diagram and the rendering options
// that shaped its output. Same input and options, same key.
func Key(diagram string, opts ...string) string {
	h := sha256.New()
	_, _ = io.WriteString(h, diagram)
	for _, o := range opts {
		h.Write([]byte{0})
		_, _ = io.WriteString(h, o)
	}
	return "render:" + hex.EncodeToString(h.Sum(nil))
}
