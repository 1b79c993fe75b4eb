package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/session"
	"github.com/dmitrymomot/entitykit/svc/tenant"
)

func sessionContext(tenantID *uuid.UUID) context.Context {
	uid := uuid.New()
	return session.WithSession(context.Background(), session.NewSession("token", &uid, tenantID, time.Hour))
}

func TestSessionMember(t *testing.T) {
	t.Parallel()

	acme := createTestTenant("acme", true)
	other := uuid.New()
	member := tenant.SessionMember()

	tests := []struct {
		name    string
		ctx     context.Context
		wantErr error
	}{
		{"bound to tenant", sessionContext(&acme.ID), nil},
		{"bound to another tenant", sessionContext(&other), tenant.ErrNotMember},
		{"session without tenant", sessionContext(nil), tenant.ErrNotMember},
		{"no session", context.Background(), tenant.ErrNotMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := member(tt.ctx, acme)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, tenant.IsNotFound(err))
		})
	}
}

func TestLookup_Authorizer(t *testing.T) {
	t.Parallel()

	resolver := tenant.NewHeaderResolver("X-Tenant-ID")

	t.Run("header cannot select a foreign tenant", func(t *testing.T) {
		t.Parallel()
		acme := createTestTenant("acme", true)
		provider := &mockProvider{}
		provider.On("GetByIdentifier", mock.Anything, acme.ID.String()).Return(acme, nil)

		l := tenant.NewLookup(resolver, provider, tenant.WithAuthorizer(tenant.SessionMember()))
		r := requestWithTenant(acme.ID.String())
		_, err := l.Resolve(sessionContext(nil), r)

		assert.ErrorIs(t, err, tenant.ErrNotMember)
	})

	t.Run("cache hit is still checked", func(t *testing.T) {
		t.Parallel()
		acme := createTestTenant("acme", true)
		cache := &mockCache{}
		cache.On("Get", mock.Anything, "acme").Return(acme, true)
		other := uuid.New()

		l := tenant.NewLookup(resolver, &mockProvider{},
			tenant.WithCache(cache), tenant.WithAuthorizer(tenant.SessionMember()))
		r := requestWithTenant("acme")

		_, err := l.Resolve(sessionContext(&other), r)
		assert.ErrorIs(t, err, tenant.ErrNotMember)

		got, err := l.Resolve(sessionContext(&acme.ID), r)
		require.NoError(t, err)
		assert.Equal(t, acme, got)
	})

	t.Run("tenant already in context is still checked", func(t *testing.T) {
		t.Parallel()
		acme := createTestTenant("acme", true)
		l := tenant.NewLookup(resolver, &mockProvider{}, tenant.WithAuthorizer(tenant.SessionMember()))

		ctx := tenant.WithTenant(sessionContext(nil), acme)
		_, err := l.Resolve(ctx, requestWithTenant(""))
		assert.ErrorIs(t, err, tenant.ErrNotMember)
	})
}
