package entity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrDuplicateEntity = errors.New("entity already exists")

// MemoryStorage keeps entities in process memory.
// Suitable for tests and local development only.
type MemoryStorage struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]Entity
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{rows: make(map[uuid.UUID]Entity)}
}

func (s *MemoryStorage) Create(_ context.Context, e *Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[e.ID]; ok {
		return ErrDuplicateEntity
	}
	s.rows[e.ID] = clone(e)
	return nil
}

func (s *MemoryStorage) Get(_ context.Context, tenantID, id uuid.UUID) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok || row.TenantID != tenantID {
		return nil, ErrNotFound
	}
	out := clone(&row)
	return &out, nil
}

func (s *MemoryStorage) Mutate(_ context.Context, tenantID, id uuid.UUID, fn func(*Entity) error) (*Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.TenantID != tenantID {
		return nil, ErrNotFound
	}

	work := clone(&row)
	if err := fn(&work); err != nil {
		if errors.Is(err, ErrUnchanged) {
			out := clone(&row)
			return &out, nil
		}
		return nil, err
	}
	// Identity columns are immutable.
	work.ID, work.TenantID, work.CreatedAt = row.ID, row.TenantID, row.CreatedAt
	s.rows[id] = work

	out := clone(&work)
	return &out, nil
}

func (s *MemoryStorage) Delete(_ context.Context, tenantID, id uuid.UUID, guard func(*Entity) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.TenantID != tenantID {
		return ErrNotFound
	}
	if guard != nil {
		candidate := clone(&row)
		if err := guard(&candidate); err != nil {
			return err
		}
	}
	delete(s.rows, id)
	return nil
}

// Len returns the number of stored entities across all tenants.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func clone(e *Entity) Entity {
	out := *e
	if e.CreatedBy != nil {
		v := *e.CreatedBy
		out.CreatedBy = &v
	}
	if e.UpdatedBy != nil {
		v := *e.UpdatedBy
		out.UpdatedBy = &v
	}
	if e.ArchivedAt != nil {
		v := *e.ArchivedAt
		out.ArchivedAt = &v
	}
	return out
}
