// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines a TTL key/value store. The gateway uses it to persist search
// session inputs (query, filters, page) so a session survives across
// instances; course results are never stored.
//
// Example usage:
//
//	// Store a session
//	err := cache.Set(ctx, "session:123", data, 30*time.Minute)
//
//	// Retrieve a session
//	data, err := cache.Get(ctx, "session:123")
//	if err != nil {
//		// handle error or miss
//	}
//
//	// Delete a session
//	err = cache.Delete(ctx, "session:123")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
