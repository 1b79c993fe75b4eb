package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an entity.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPending   Status = "PENDING"
	StatusArchived  Status = "ARCHIVED"
	StatusSuspended Status = "SUSPENDED"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusActive, StatusPending, StatusArchived, StatusSuspended}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusArchived, StatusSuspended:
		return true
	}
	return false
}

func statusStrings() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

// Entity is a tenant-owned legal entity record.
type Entity struct {
	ID           uuid.UUID  `json:"id"`
	TenantID     uuid.UUID  `json:"tenantId"`
	Name         string     `json:"name"`
	LegalForm    string     `json:"legalForm"`
	Status       Status     `json:"status"`
	ActivityCode string     `json:"activityCode"`
	CreatedBy    *uuid.UUID `json:"createdBy,omitempty"`
	UpdatedBy    *uuid.UUID `json:"updatedBy,omitempty"`
	ArchivedAt   *time.Time `json:"archivedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsArchived reports whether the entity may be permanently deleted.
func (e *Entity) IsArchived() bool {
	return e.Status == StatusArchived
}
