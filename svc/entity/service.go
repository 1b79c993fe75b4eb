package entity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/entitykit/pkg/audit"
	"github.com/dmitrymomot/entitykit/pkg/logger"
	"github.com/dmitrymomot/entitykit/pkg/validator"
)

// Service is the entity domain API. All operations are scoped by tenant.
// Returned errors are tagged with a Kind, see KindOf.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, callerID string, in CreateInput) (*Entity, error)
	Get(ctx context.Context, tenantID uuid.UUID, id string) (*Entity, error)
	Update(ctx context.Context, tenantID uuid.UUID, id, callerID string, in UpdateInput) (*Entity, error)
	Archive(ctx context.Context, tenantID uuid.UUID, id, callerID string) error
	Delete(ctx context.Context, tenantID uuid.UUID, id, callerID string) error
}

// Auditor records domain changes. *audit.Logger satisfies it.
type Auditor interface {
	Log(ctx context.Context, action string, opts ...audit.EventOption) error
}

const (
	ActionCreate  = "entity.create"
	ActionUpdate  = "entity.update"
	ActionArchive = "entity.archive"
	ActionDelete  = "entity.delete"
)

type service struct {
	storage Storage
	auditor Auditor
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates the entity service on top of storage.
func NewService(storage Storage, opts ...ServiceOption) Service {
	if storage == nil {
		panic("entity: storage is required")
	}

	s := &service{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput describes a new entity. Status defaults to ACTIVE.
type CreateInput struct {
	Name         string `json:"name"`
	LegalForm    string `json:"legalForm"`
	Status       Status `json:"status,omitempty"`
	ActivityCode string `json:"activityCode"`
}

func (s *service) Create(ctx context.Context, tenantID uuid.UUID, callerID string, in CreateInput) (*Entity, error) {
	const op = "entity.Create"

	caller, err := parseCaller(op, callerID)
	if err != nil {
		return nil, err
	}

	if in.Status == "" {
		in.Status = StatusActive
	}
	patch := UpdateInput{Name: &in.Name, LegalForm: &in.LegalForm, Status: &in.Status, ActivityCode: &in.ActivityCode}.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, E(KindInvalid, op, err)
	}

	now := s.now().UTC()
	e := &Entity{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Status:    StatusActive,
		CreatedBy: &caller,
		UpdatedBy: &caller,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.apply(e)
	if e.Status == StatusArchived {
		e.ArchivedAt = &now
	}

	if err := s.storage.Create(ctx, e); err != nil {
		return nil, s.storageError(op, err)
	}

	s.logger.InfoContext(ctx, "entity created",
		logger.EntityID(e.ID),
		logger.TenantID(tenantID),
	)
	s.record(ctx, ActionCreate, tenantID, callerID, e.ID)
	return e, nil
}

func (s *service) Get(ctx context.Context, tenantID uuid.UUID, id string) (*Entity, error) {
	const op = "entity.Get"

	entityID, err := parseEntityID(op, id)
	if err != nil {
		return nil, err
	}

	e, err := s.storage.Get(ctx, tenantID, entityID)
	if err != nil {
		return nil, s.storageError(op, err)
	}
	return e, nil
}

// Update applies the present fields of in. An archived entity can only be
// changed together with a status that moves it out of the archive.
func (s *service) Update(ctx context.Context, tenantID uuid.UUID, id, callerID string, in UpdateInput) (*Entity, error) {
	const op = "entity.Update"

	entityID, err := parseEntityID(op, id)
	if err != nil {
		return nil, err
	}
	caller, err := parseCaller(op, callerID)
	if err != nil {
		return nil, err
	}

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, E(KindInvalid, op, err)
	}
	if in.IsEmpty() {
		return s.Get(ctx, tenantID, id)
	}

	changed := false
	e, err := s.storage.Mutate(ctx, tenantID, entityID, func(e *Entity) error {
		wasArchived := e.IsArchived()
		if wasArchived && (in.Status == nil || *in.Status == StatusArchived) {
			return ErrArchived
		}
		if !in.apply(e) {
			return ErrUnchanged
		}
		changed = true

		now := s.now().UTC()
		switch {
		case !wasArchived && e.IsArchived():
			e.ArchivedAt = &now
		case wasArchived && !e.IsArchived():
			e.ArchivedAt = nil
		}
		e.UpdatedBy = &caller
		e.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, s.storageError(op, err)
	}

	if changed {
		s.record(ctx, ActionUpdate, tenantID, callerID, entityID, audit.WithMetadata("fields", in.fields()))
	}
	return e, nil
}

// Archive moves the entity to ARCHIVED. Archiving an archived entity is a no-op.
func (s *service) Archive(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	const op = "entity.Archive"

	entityID, err := parseEntityID(op, id)
	if err != nil {
		return err
	}
	caller, err := parseCaller(op, callerID)
	if err != nil {
		return err
	}

	changed := false
	_, err = s.storage.Mutate(ctx, tenantID, entityID, func(e *Entity) error {
		if e.IsArchived() {
			return ErrUnchanged
		}
		changed = true
		now := s.now().UTC()
		e.Status = StatusArchived
		e.ArchivedAt = &now
		e.UpdatedBy = &caller
		e.UpdatedAt = now
		return nil
	})
	if err != nil {
		return s.storageError(op, err)
	}

	if changed {
		s.record(ctx, ActionArchive, tenantID, callerID, entityID)
	}
	return nil
}

// Delete permanently removes an archived entity.
func (s *service) Delete(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	const op = "entity.Delete"

	entityID, err := parseEntityID(op, id)
	if err != nil {
		return err
	}
	if _, err := parseCaller(op, callerID); err != nil {
		return err
	}

	err = s.storage.Delete(ctx, tenantID, entityID, func(e *Entity) error {
		if !e.IsArchived() {
			return ErrNotArchived
		}
		return nil
	})
	if err != nil {
		return s.storageError(op, err)
	}

	s.logger.InfoContext(ctx, "entity deleted permanently",
		logger.EntityID(entityID),
		logger.TenantID(tenantID),
		logger.UserID(callerID),
	)
	s.record(ctx, ActionDelete, tenantID, callerID, entityID)
	return nil
}

// record writes an audit event. The change is already committed, so a
// failure here is logged and not returned.
func (s *service) record(ctx context.Context, action string, tenantID uuid.UUID, callerID string, id uuid.UUID, opts ...audit.EventOption) {
	if s.auditor == nil {
		return
	}
	opts = append([]audit.EventOption{
		audit.WithTenantID(tenantID.String()),
		audit.WithUserID(callerID),
		audit.WithResource("entity", id.String()),
	}, opts...)
	if err := s.auditor.Log(ctx, action, opts...); err != nil {
		s.logger.WarnContext(ctx, "failed to record audit event",
			logger.Error(err),
			logger.Event(action),
			logger.EntityID(id),
		)
	}
}

func (s *service) storageError(op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return E(KindNotFound, op, err)
	case errors.Is(err, ErrArchived), errors.Is(err, ErrNotArchived), errors.Is(err, ErrDuplicateEntity):
		return E(KindConflict, op, err)
	case validator.IsValidationError(err):
		return E(KindInvalid, op, err)
	default:
		return E(KindInternal, op, errors.Join(ErrStorageFailure, err))
	}
}

// Ids that are not uuids cannot exist, so they are reported as not found.
func parseEntityID(op, id string) (uuid.UUID, error) {
	v, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, E(KindNotFound, op, ErrNotFound)
	}
	return v, nil
}

func parseCaller(op, callerID string) (uuid.UUID, error) {
	v, err := uuid.Parse(callerID)
	if err != nil || v == uuid.Nil {
		return uuid.Nil, E(KindUnauthorized, op, ErrInvalidCaller)
	}
	return v, nil
}
