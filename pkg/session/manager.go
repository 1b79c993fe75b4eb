package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Manager resolves and issues sessions.
type Manager struct {
	store        Store
	transport    Transport
	config       Config
	log          *slog.Logger
	activityChan chan activityUpdate
	done         chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
}

type activityUpdate struct {
	token string
	time  time.Time
}

// New creates a session manager. Without options it uses an in-memory store
// and the Authorization bearer header followed by the session cookie.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:       DefaultConfig(),
		log:          logger.Discard(),
		activityChan: make(chan activityUpdate, 1000),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(time.Minute)
	}
	if m.transport == nil {
		m.transport = NewCompositeTransport(
			NewHeaderTransport(m.config.HeaderName),
			NewCookieTransport(m.config.CookieName, m.config.SecureCookies),
		)
	}

	m.wg.Add(1)
	go m.activityWorker()

	return m
}

// NewFromConfig creates a Manager from cfg; opts are applied afterwards.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Get returns the session referenced by the request.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Create issues a new session for userID, optionally bound to tenantID,
// and writes the token with the configured transport.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID uuid.UUID, tenantID *uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := NewSession(token, &userID, tenantID, m.config.TTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	if err := m.transport.SetToken(w, session.Token, m.config.TTL); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	return session, nil
}

// Destroy deletes the session and clears the token.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err == nil && token != "" {
		if err := m.store.Delete(ctx, token); err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
	}

	return m.transport.ClearToken(w)
}

func (m *Manager) shouldUpdateActivity(session *Session) bool {
	return time.Since(session.LastActivityAt) >= m.config.ActivityUpdateThreshold
}

// queueActivityUpdate never blocks; updates are dropped when the queue is full.
func (m *Manager) queueActivityUpdate(token string, at time.Time) {
	select {
	case m.activityChan <- activityUpdate{token: token, time: at}:
	default:
	}
}

func (m *Manager) activityWorker() {
	defer m.wg.Done()
	for {
		select {
		case update := <-m.activityChan:
			m.applyActivity(update)
		case <-m.done:
			for {
				select {
				case update := <-m.activityChan:
					m.applyActivity(update)
				default:
					return
				}
			}
		}
	}
}

func (m *Manager) applyActivity(update activityUpdate) {
	if err := m.store.UpdateActivity(context.Background(), update.token, update.time); err != nil &&
		!errors.Is(err, ErrSessionNotFound) {
		m.log.Warn("failed to update session activity", logger.Error(err), logger.Component("session"))
	}
}

// Close drains pending activity updates and stops the worker.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
	})
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
