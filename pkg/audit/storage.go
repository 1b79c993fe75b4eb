package audit

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/jackc/pgx/v5"
)

// MemoryStorage keeps events in memory. For tests and local runs.
type MemoryStorage struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Store(_ context.Context, events ...Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

// Events returns a copy of everything stored so far.
func (s *MemoryStorage) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PGStorage writes events to the audit_events table.
type PGStorage struct {
	db batchSender
}

func NewPGStorage(db batchSender) *PGStorage {
	return &PGStorage{db: db}
}

func (s *PGStorage) Store(ctx context.Context, events ...Event) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range events {
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return errors.Join(ErrEventValidation, err)
		}
		batch.Queue(
			`INSERT INTO audit_events (id, tenant_id, user_id, action, resource, resource_id, result, error, request_id, ip, metadata, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.ID, e.TenantID, e.UserID, e.Action, e.Resource, e.ResourceID, e.Result,
			e.Error, e.RequestID, e.IP, metadata, e.CreatedAt,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	for range events {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}
