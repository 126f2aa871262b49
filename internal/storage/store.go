// Package storage provides the key-value store backing the
// application: a Store interface, a Redis implementation on
// github.com/redis/go-redis, and an in-memory implementation used in
// tests.
package storage

import (
	"context"
	"time"
)

// TTL sentinel values, matching the Redis TTL command reply.
const (
	// TTLNoExpiry is reported for a key that exists without an expiry.
	TTLNoExpiry int64 = -1
	// TTLKeyMissing is reported for a key that does not exist.
	TTLKeyMissing int64 = -2
)

// Store defines the key-value operations the application relies on.
type Store interface {
	// Set stores a value under key. A positive ttl sets a
	// store-managed expiry; zero stores the key without one.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get retrieves the value stored under key. It returns
	// ErrKeyNotFound if the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys enumerates all keys matching the given glob pattern. The
	// enumeration is a full incremental walk, not a fixed page.
	Keys(ctx context.Context, pattern string) ([]string, error)

	// MGet fetches the values for the given keys in one call. The
	// result has one element per requested key, nil for absent keys.
	MGet(ctx context.Context, keys []string) ([]*string, error)

	// TTL reports the remaining time-to-live of key in whole seconds,
	// TTLNoExpiry for a key without expiry, TTLKeyMissing for an
	// absent key.
	TTL(ctx context.Context, key string) (int64, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection resources.
	Close() error
}
