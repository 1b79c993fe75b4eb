package entity

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists entities. Every method is scoped by tenant; a row owned by
// another tenant is reported as ErrNotFound.
type Storage interface {
	Create(ctx context.Context, e *Entity) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*Entity, error)
	// Mutate loads the entity, applies fn and saves the result atomically.
	// When fn returns an error nothing is written and the error is returned as
	// is, except ErrUnchanged which yields the current entity and no error.
	Mutate(ctx context.Context, tenantID, id uuid.UUID, fn func(*Entity) error) (*Entity, error)
	// Delete removes the entity if guard accepts it.
	Delete(ctx context.Context, tenantID, id uuid.UUID, guard func(*Entity) error) error
}
