package entity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/entitykit/pkg/pg"
)

// pgDB is the subset of pgxpool.Pool used by PGStorage.
type pgDB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStorage stores entities in PostgreSQL.
type PGStorage struct {
	db pgDB
}

func NewPGStorage(db pgDB) *PGStorage {
	return &PGStorage{db: db}
}

const entityColumns = `id, tenant_id, name, legal_form, status, activity_code, created_by, updated_by, archived_at, created_at, updated_at`

func scanEntity(row pgx.Row) (*Entity, error) {
	var e Entity
	if err := row.Scan(
		&e.ID, &e.TenantID, &e.Name, &e.LegalForm, &e.Status, &e.ActivityCode,
		&e.CreatedBy, &e.UpdatedBy, &e.ArchivedAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *PGStorage) Create(ctx context.Context, e *Entity) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO entities (id, tenant_id, name, legal_form, status, activity_code, created_by, updated_by, archived_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		e.ID, e.TenantID, e.Name, e.LegalForm, e.Status, e.ActivityCode, e.CreatedBy, e.UpdatedBy, e.ArchivedAt,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if pg.IsDuplicateKeyError(err) {
		return errors.Join(ErrDuplicateEntity, err)
	}
	return err
}

func (s *PGStorage) Get(ctx context.Context, tenantID, id uuid.UUID) (*Entity, error) {
	return scanEntity(s.db.QueryRow(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
}

func (s *PGStorage) Mutate(ctx context.Context, tenantID, id uuid.UUID, fn func(*Entity) error) (*Entity, error) {
	var out *Entity
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		e, err := lockEntity(ctx, tx, tenantID, id)
		if err != nil {
			return err
		}
		current := *e
		if err := fn(e); err != nil {
			if errors.Is(err, ErrUnchanged) {
				out = &current
				return nil
			}
			return err
		}

		out, err = scanEntity(tx.QueryRow(ctx,
			`UPDATE entities
			 SET name = $3, legal_form = $4, status = $5, activity_code = $6,
			     updated_by = $7, archived_at = $8, updated_at = $9
			 WHERE id = $1 AND tenant_id = $2
			 RETURNING `+entityColumns,
			id, tenantID, e.Name, e.LegalForm, e.Status, e.ActivityCode,
			e.UpdatedBy, e.ArchivedAt, e.UpdatedAt,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PGStorage) Delete(ctx context.Context, tenantID, id uuid.UUID, guard func(*Entity) error) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		e, err := lockEntity(ctx, tx, tenantID, id)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(e); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE id = $1 AND tenant_id = $2`, id, tenantID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func lockEntity(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*Entity, error) {
	return scanEntity(tx.QueryRow(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE id = $1 AND tenant_id = $2 FOR UPDATE`,
		id, tenantID,
	))
}
