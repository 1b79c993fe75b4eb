package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a client session. It is authenticated once a user is bound to it.
type Session struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	TenantID       *uuid.UUID `json:"tenant_id,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewSession creates a new session expiring after ttl.
func NewSession(token string, userID, tenantID *uuid.UUID, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		UserID:         userID,
		TenantID:       tenantID,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsAuthenticated reports whether the session carries a non-empty user id.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil && *s.UserID != uuid.Nil
}

func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Valid reports whether the session is authenticated and not expired.
func (s *Session) Valid() bool {
	return s.IsAuthenticated() && !s.IsExpired()
}

// UserIDString returns the user id or "" for anonymous sessions.
func (s *Session) UserIDString() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.UserID.String()
}

// Touch updates the last activity time.
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}
