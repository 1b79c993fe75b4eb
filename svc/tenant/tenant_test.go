package tenant_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/entitykit/svc/tenant"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetByIdentifier(ctx context.Context, identifier string) (*tenant.Tenant, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (*tenant.Tenant, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Bool(1)
}

func (m *mockCache) Set(ctx context.Context, key string, t *tenant.Tenant) error {
	return m.Called(ctx, key, t).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func createTestTenant(subdomain string, active bool) *tenant.Tenant {
	return &tenant.Tenant{
		ID:        uuid.New(),
		Subdomain: subdomain,
		Name:      subdomain + " Corp",
		PlanID:    "standard",
		Active:    active,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
