package tenant

import (
	"context"

	"github.com/dmitrymomot/entitykit/pkg/session"
)

// SessionMember admits a request only into the tenant its session is bound
// to. Header or subdomain identifiers naming any other tenant, and sessions
// without a tenant binding, are rejected with ErrNotMember.
func SessionMember() Authorizer {
	return func(ctx context.Context, t *Tenant) error {
		sess, ok := session.FromContext(ctx)
		if !ok || sess.TenantID == nil || *sess.TenantID != t.ID {
			return ErrNotMember
		}
		return nil
	}
}
