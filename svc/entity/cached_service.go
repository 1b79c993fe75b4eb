package entity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// CachedService caches Get results in Redis and drops the cached copy after
// every write. Redis failures are logged and never fail the request.
//
// Every write also bumps a per-entity generation. A Get only fills the cache
// if the generation it saw before reading storage is still current, so a
// read that raced with a write cannot store the old row.
type CachedService struct {
	Service
	client redis.UniversalClient
	cfg    CacheConfig
	logger *slog.Logger
}

// CacheOption configures a CachedService.
type CacheOption func(*CachedService)

func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CachedService) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCachedService wraps next with a Redis read cache.
func NewCachedService(next Service, client redis.UniversalClient, cfg CacheConfig, opts ...CacheOption) *CachedService {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "entity:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	c := &CachedService{
		Service: next,
		client:  client,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fillScript sets KEYS[1] only while KEYS[2] still holds ARGV[1] ("" = unset).
var fillScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if (gen or '') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

func generationKey(key string) string { return key + ":gen" }

func (c *CachedService) key(tenantID uuid.UUID, id string) (string, bool) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return c.cfg.KeyPrefix + tenantID.String() + ":" + entityID.String(), true
}

func (c *CachedService) Get(ctx context.Context, tenantID uuid.UUID, id string) (*Entity, error) {
	key, ok := c.key(tenantID, id)
	if !ok {
		return c.Service.Get(ctx, tenantID, id)
	}

	gen, err := c.client.Get(ctx, generationKey(key)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "entity cache read failed", logger.EntityID(id), logger.Error(err))
		return c.Service.Get(ctx, tenantID, id)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e Entity
		if err := json.Unmarshal(raw, &e); err == nil {
			return &e, nil
		}
		c.logger.WarnContext(ctx, "dropping corrupt cached entity", logger.EntityID(id))
		c.forget(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "entity cache read failed", logger.EntityID(id), logger.Error(err))
	}

	e, err := c.Service.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, key, gen, e)
	return e, nil
}

func (c *CachedService) fill(ctx context.Context, key, gen string, e *Entity) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	keys := []string{key, generationKey(key)}
	if err := fillScript.Run(ctx, c.client, keys, gen, data, c.cfg.TTL.Milliseconds()).Err(); err != nil {
		c.logger.WarnContext(ctx, "entity cache write failed", logger.EntityID(e.ID), logger.Error(err))
	}
}

func (c *CachedService) Update(ctx context.Context, tenantID uuid.UUID, id, callerID string, in UpdateInput) (*Entity, error) {
	e, err := c.Service.Update(ctx, tenantID, id, callerID, in)
	c.invalidate(ctx, tenantID, id)
	return e, err
}

func (c *CachedService) Archive(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	err := c.Service.Archive(ctx, tenantID, id, callerID)
	c.invalidate(ctx, tenantID, id)
	return err
}

func (c *CachedService) Delete(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	err := c.Service.Delete(ctx, tenantID, id, callerID)
	c.invalidate(ctx, tenantID, id)
	return err
}

// Writes invalidate even on failure; a failed write may still have committed.
// The generation outlives the cached value so a pending fill always sees the bump.
func (c *CachedService) invalidate(ctx context.Context, tenantID uuid.UUID, id string) {
	key, ok := c.key(tenantID, id)
	if !ok {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.Incr(ctx, generationKey(key))
		p.Expire(ctx, generationKey(key), 2*c.cfg.TTL)
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "entity cache invalidation failed", slog.String("key", key), logger.Error(err))
	}
}

func (c *CachedService) forget(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.WarnContext(ctx, "entity cache invalidation failed", slog.String("key", key), logger.Error(err))
	}
}
