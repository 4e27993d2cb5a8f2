package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
	label string

	mu     sync.Mutex
	tagged map[string]struct{}
}

// NewMemory returns an in-process cache for single-instance deploys where no
// Redis is configured. Staleness is per process: another instance will not
// see this instance's invalidations, only its own TTL expiry.
func NewMemory(label string, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryCache{
		store:  gocache.New(ttl, 2*ttl),
		label:  label,
		tagged: make(map[string]struct{}),
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, found := c.store.Get(key)
	if !found {
		return false, nil
	}

	data, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("cache decode %s: unexpected entry type", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	c.store.Set(key, data, gocache.DefaultExpiration)

	c.mu.Lock()
	c.tagged[key] = struct{}{}
	c.mu.Unlock()

	return nil
}

func (c *memoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.tagged {
		c.store.Delete(key)
		delete(c.tagged, key)
	}
	return nil
}
