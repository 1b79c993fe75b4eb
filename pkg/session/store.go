package session

import (
	"context"
	"time"
)

// Store defines session persistence.
// Get returns ErrSessionNotFound for unknown tokens and ErrSessionExpired for
// sessions past their expiry.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	UpdateActivity(ctx context.Context, token string, lastActivity time.Time) error
	Delete(ctx context.Context, token string) error
}
