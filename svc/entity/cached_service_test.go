package entity_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/svc/entity"
)

func newCachedService(t *testing.T) (*entity.CachedService, entity.Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner, _ := newTestService(t)
	cached := entity.NewCachedService(inner, client, entity.CacheConfig{TTL: time.Minute, KeyPrefix: "test:"})
	return cached, inner, mr
}

func TestCachedService_Get(t *testing.T) {
	t.Parallel()

	cached, inner, mr := newCachedService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	seeded := seedEntity(t, inner, tenantID, entity.StatusActive)
	key := "test:" + tenantID.String() + ":" + seeded.ID.String()

	e, err := cached.Get(ctx, tenantID, seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, e.ID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// Served from cache after the underlying row changes behind its back.
	_, err = inner.Update(ctx, tenantID, seeded.ID.String(), uuid.NewString(), entity.UpdateInput{Name: ptr("Stale")})
	require.NoError(t, err)
	e, err = cached.Get(ctx, tenantID, seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, e.Name)
}

func TestCachedService_InvalidatesOnWrite(t *testing.T) {
	t.Parallel()

	cached, inner, mr := newCachedService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	seeded := seedEntity(t, inner, tenantID, entity.StatusActive)
	id := seeded.ID.String()
	key := "test:" + tenantID.String() + ":" + id

	_, err := cached.Get(ctx, tenantID, id)
	require.NoError(t, err)
	require.True(t, mr.Exists(key))

	e, err := cached.Update(ctx, tenantID, id, uuid.NewString(), entity.UpdateInput{Name: ptr("Fresh")})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", e.Name)
	assert.False(t, mr.Exists(key))

	e, err = cached.Get(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", e.Name)

	require.NoError(t, cached.Archive(ctx, tenantID, id, uuid.NewString()))
	assert.False(t, mr.Exists(key))

	_, err = cached.Get(ctx, tenantID, id)
	require.NoError(t, err)
	require.NoError(t, cached.Delete(ctx, tenantID, id, uuid.NewString()))
	assert.False(t, mr.Exists(key))

	_, err = cached.Get(ctx, tenantID, id)
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}

func TestCachedService_CorruptEntry(t *testing.T) {
	t.Parallel()

	cached, inner, mr := newCachedService(t)
	tenantID := uuid.New()
	seeded := seedEntity(t, inner, tenantID, entity.StatusActive)
	key := "test:" + tenantID.String() + ":" + seeded.ID.String()
	require.NoError(t, mr.Set(key, "{not json"))

	e, err := cached.Get(context.Background(), tenantID, seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, e.Name)
}

func TestCachedService_RedisDown(t *testing.T) {
	t.Parallel()

	cached, inner, mr := newCachedService(t)
	tenantID := uuid.New()
	seeded := seedEntity(t, inner, tenantID, entity.StatusActive)
	mr.Close()

	e, err := cached.Get(context.Background(), tenantID, seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, e.ID)
}

func TestCachedService_MalformedID(t *testing.T) {
	t.Parallel()

	cached, _, mr := newCachedService(t)
	_, err := cached.Get(context.Background(), uuid.New(), "nope")
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	assert.Empty(t, mr.Keys())
}

// interleavedService runs between once, after reading storage and before the
// row is handed back to the cache layer.
type interleavedService struct {
	entity.Service
	between func()
}

func (s *interleavedService) Get(ctx context.Context, tenantID uuid.UUID, id string) (*entity.Entity, error) {
	e, err := s.Service.Get(ctx, tenantID, id)
	if hook := s.between; hook != nil {
		s.between = nil
		hook()
	}
	return e, err
}

func TestCachedService_WriteDuringFill(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner, _ := newTestService(t)
	slow := &interleavedService{Service: inner}
	cached := entity.NewCachedService(slow, client, entity.CacheConfig{TTL: time.Minute, KeyPrefix: "test:"})

	ctx := context.Background()
	tenantID := uuid.New()
	seeded := seedEntity(t, inner, tenantID, entity.StatusActive)
	id := seeded.ID.String()
	key := "test:" + tenantID.String() + ":" + id

	slow.between = func() {
		_, err := cached.Update(ctx, tenantID, id, uuid.NewString(), entity.UpdateInput{Name: ptr("Fresh")})
		require.NoError(t, err)
	}

	e, err := cached.Get(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, e.Name)
	assert.False(t, mr.Exists(key), "row read before the write must not be cached")

	e, err = cached.Get(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", e.Name)
	assert.True(t, mr.Exists(key))
}
