package cache

import (
	"context"
	"strings"
	"time"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Get retrieves a value from the cache
	// Returns the value and a boolean indicating whether the key was found
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set adds a value to the cache with the specified expiration
	// If expiration is 0, the item never expires (but may be evicted)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	// Delete removes a key from the cache
	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes all keys with the given prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush removes all items from the cache
	Flush(ctx context.Context)
}

// Predefined cache key prefixes for different entity types
const (
	PrefixJob    = "job:v1:"
	PrefixVendor = "vendor:v1:"
	PrefixClient = "client:v1:"
	PrefixUser   = "user:v1:"
)

// Key builds a cache key from a prefix, the tenant scope and parts.
// Tenant is part of every key so one tenant's cached rows can never leak
// into another tenant's reads.
func Key(prefix, tenantID string, parts ...string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(tenantID)
	for _, p := range parts {
		sb.WriteString(":")
		sb.WriteString(p)
	}
	return sb.String()
}
