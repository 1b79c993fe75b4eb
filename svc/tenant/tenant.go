package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is the request-scoped tenant every domain call is scoped by.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	PlanID    string    `json:"plan_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads tenants by identifier: a UUID or a subdomain.
// Returns ErrTenantNotFound if no tenant matches.
type Provider interface {
	GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error)
}
