package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Middleware loads the request's session into the context.
// Requests without a usable session pass through untouched; authorization
// is left to the handlers.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Get(r.Context(), r)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
				m.log.ErrorContext(r.Context(), "failed to load session",
					logger.Error(err), logger.Component("session"))
			}
			next.ServeHTTP(w, r)
			return
		}

		if m.shouldUpdateActivity(session) {
			session.Touch()
			m.queueActivityUpdate(session.Token, session.LastActivityAt)
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}
