package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error raised by Cache implementations.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss reports that a key holds no value.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value store behind the topic verdict cache and the
// health check.
type Cache interface {
	// Get returns ErrCacheMiss for an absent or expired key.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value for expiration; 0 keeps it until evicted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete drops key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
