package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	label  string
	ttl    time.Duration
}

// NewRedis returns a Redis-backed cache. The label is kept as a Redis set of
// tagged keys so one invalidation can drop all of them, and it carries the
// same TTL as the entries it indexes.
func NewRedis(client *redis.Client, label string, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{client: client, label: label, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	labelKey := c.labelKey()
	if err := c.client.SAdd(ctx, labelKey, key).Err(); err != nil {
		return fmt.Errorf("cache tag %s: %w", key, err)
	}
	if err := c.client.Expire(ctx, labelKey, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache tag expire %s: %w", key, err)
	}

	return nil
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	labelKey := c.labelKey()

	keys, err := c.client.SMembers(ctx, labelKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("cache invalidate %s: %w", c.label, err)
	}

	keys = append(keys, labelKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", c.label, err)
	}
	return nil
}

func (c *redisCache) labelKey() string {
	return "cache_label:" + c.label
}
