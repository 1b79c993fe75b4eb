package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/entitykit/pkg/pg"
)

// querier is the part of pgxpool.Pool used by the provider.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGProvider loads tenants from the tenants table.
type PGProvider struct {
	db querier
}

func NewPGProvider(db querier) *PGProvider {
	return &PGProvider{db: db}
}

const tenantColumns = `id, subdomain, name, plan_id, active, created_at`

// GetByIdentifier looks tenants up by id when identifier is a uuid, by subdomain otherwise.
func (p *PGProvider) GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error) {
	var row pgx.Row
	if id, err := uuid.Parse(identifier); err == nil {
		row = p.db.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
	} else {
		row = p.db.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE lower(subdomain) = lower($1)`, identifier)
	}

	var t Tenant
	if err := row.Scan(&t.ID, &t.Subdomain, &t.Name, &t.PlanID, &t.Active, &t.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a tenant. Used by seeding and tests; onboarding lives elsewhere.
func (p *PGProvider) Create(ctx context.Context, t *Tenant) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	err := p.db.QueryRow(ctx,
		`INSERT INTO tenants (id, subdomain, name, plan_id, active) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		t.ID, t.Subdomain, t.Name, t.PlanID, t.Active,
	).Scan(&t.CreatedAt)
	if pg.IsDuplicateKeyError(err) {
		return errors.Join(ErrSubdomainTaken, err)
	}
	return err
}
