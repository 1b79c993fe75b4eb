package session

import (
	"log/slog"
	"time"
)

// Option configures the Manager.
type Option func(*Manager)

func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithActivityUpdateThreshold sets the minimum time between activity updates.
func WithActivityUpdateThreshold(threshold time.Duration) Option {
	return func(m *Manager) {
		m.config.ActivityUpdateThreshold = threshold
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
