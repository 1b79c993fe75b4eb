package tenant

import (
	"net/http"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Middleware resolves the tenant once per request and stores it in the context.
//
// It never rejects a request: when resolution fails the request continues
// without a tenant, and handlers calling Resolve get the failure in their
// own order of checks (authentication first).
func (l *Lookup) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t, err := l.Resolve(r.Context(), r)
		if err != nil {
			if !IsNotFound(err) {
				l.log.WarnContext(r.Context(), "failed to resolve tenant",
					logger.Error(err), logger.Component("tenant"))
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
	})
}
