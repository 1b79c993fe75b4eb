package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/entitykit/pkg/cache"
)

// Cache stores resolved tenants by identifier.
type Cache interface {
	Get(ctx context.Context, key string) (*Tenant, bool)
	Set(ctx context.Context, key string, tenant *Tenant) error
	Delete(ctx context.Context, key string) error
}

// NoOpCache disables caching.
type NoOpCache struct{}

func (NoOpCache) Get(context.Context, string) (*Tenant, bool) { return nil, false }
func (NoOpCache) Set(context.Context, string, *Tenant) error  { return nil }
func (NoOpCache) Delete(context.Context, string) error        { return nil }

// LRUCache is an in-process, size-bounded cache with TTL.
type LRUCache struct {
	lru *cache.LRU[string, Tenant]
}

func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	if size <= 0 {
		size = 1000
	}
	return &LRUCache{lru: cache.NewLRU[string, Tenant](size, ttl)}
}

// Get returns a copy so callers cannot mutate cached state.
func (c *LRUCache) Get(_ context.Context, key string) (*Tenant, bool) {
	t, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return &t, true
}

func (c *LRUCache) Set(_ context.Context, key string, tenant *Tenant) error {
	if tenant == nil {
		return nil
	}
	c.lru.Set(key, *tenant)
	return nil
}

func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.lru.Delete(key)
	return nil
}

// RedisCache shares resolved tenants across instances.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "tenant:"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Get treats every Redis failure as a miss; the provider stays authoritative.
func (c *RedisCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, false
	}
	return &t, true
}

func (c *RedisCache) Set(ctx context.Context, key string, tenant *Tenant) error {
	if tenant == nil {
		return nil
	}
	data, err := json.Marshal(tenant)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// TieredCache reads through caches in order and writes to all of them.
// A hit in a later cache backfills the earlier ones.
type TieredCache []Cache

func (tc TieredCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	for i, c := range tc {
		if t, ok := c.Get(ctx, key); ok {
			for _, earlier := range tc[:i] {
				_ = earlier.Set(ctx, key, t)
			}
			return t, true
		}
	}
	return nil, false
}

func (tc TieredCache) Set(ctx context.Context, key string, tenant *Tenant) error {
	var errs []error
	for _, c := range tc {
		errs = append(errs, c.Set(ctx, key, tenant))
	}
	return errors.Join(errs...)
}

func (tc TieredCache) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, c := range tc {
		errs = append(errs, c.Delete(ctx, key))
	}
	return errors.Join(errs...)
}
