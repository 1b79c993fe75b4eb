package entity

import (
	"log/slog"
	"time"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*service)

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAuditor records every successful change. Audit failures never fail the operation.
func WithAuditor(a Auditor) ServiceOption {
	return func(s *service) {
		if a != nil {
			s.auditor = a
		}
	}
}
