package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with a TTL. Values are JSON-marshaled.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
