package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Not shared between
// instances, so only for tests and single-node development.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a store. With a positive sweepEvery expired
// sessions are purged in the background until Close.
func NewMemoryStore(sweepEvery time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]Session),
		stop:     make(chan struct{}),
	}
	if sweepEvery > 0 {
		go s.sweep(sweepEvery)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	s.sessions[session.Token] = *session
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the session. Expired entries are dropped on read.
func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	stored, ok := s.sessions[token]
	s.mu.RUnlock()

	switch {
	case !ok:
		return nil, ErrSessionNotFound
	case stored.IsExpired():
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return &stored, nil
}

func (s *MemoryStore) UpdateActivity(_ context.Context, token string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	stored.LastActivityAt = at
	s.sessions[token] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// DeleteExpired purges every expired session.
func (s *MemoryStore) DeleteExpired() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, stored := range s.sessions {
		if now.After(stored.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// Close stops the background sweep. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) sweep(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.DeleteExpired()
		case <-s.stop:
			return
		}
	}
}
