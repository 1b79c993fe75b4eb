package audit

import (
	"fmt"
	"time"
)

// Result is the outcome of an audited action.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// Event is a single audit trail record.
type Event struct {
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	UserID     string         `json:"user_id"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resource_id"`
	Result     Result         `json:"result"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	IP         string         `json:"ip,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption adjusts an Event before it is stored.
type EventOption func(*Event)

func WithResource(resource, id string) EventOption {
	return func(e *Event) {
		e.Resource = resource
		e.ResourceID = id
	}
}

// WithTenantID sets the tenant explicitly, overriding the context extractor.
func WithTenantID(id string) EventOption {
	return func(e *Event) {
		e.TenantID = id
	}
}

// WithUserID sets the acting user explicitly, overriding the context extractor.
func WithUserID(id string) EventOption {
	return func(e *Event) {
		e.UserID = id
	}
}

func WithMetadata(key string, value any) EventOption {
	return func(e *Event) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}

func WithResult(result Result) EventOption {
	return func(e *Event) {
		e.Result = result
	}
}
