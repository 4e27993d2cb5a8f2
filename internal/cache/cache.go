// Package cache memoizes the hot event queries for a short window. Every
// cached entry is tagged with a group label; successful writes invalidate the
// whole label, and the TTL bounds staleness when an invalidation is missed.
package cache

import (
	"context"
	"time"
)

// Cache is a read-through memo for query results. Values round-trip through
// JSON so both backends behave identically. There is no single-flight
// collapsing: concurrent callers racing a miss each hit the backing store.
type Cache interface {
	// Get unmarshals the cached value for key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key, tagged with the cache's label, for the
	// configured TTL.
	Set(ctx context.Context, key string, value interface{}) error
	// Invalidate drops every key tagged with the cache's label.
	Invalidate(ctx context.Context) error
}

// DefaultTTL bounds staleness when a write-side invalidation never arrives.
const DefaultTTL = 10 * time.Second
