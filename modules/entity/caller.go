package entity

import (
	"context"
	"strings"

	"github.com/dmitrymomot/entitykit/pkg/session"
)

// Caller is the identity a request acts as. An empty UserID is anonymous.
type Caller struct {
	UserID string
}

func (c Caller) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}

// CallerFromContext builds a Caller from the session stored in ctx.
// Missing, expired and anonymous sessions all yield an anonymous Caller.
func CallerFromContext(ctx context.Context) Caller {
	userID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return Caller{}
	}
	return Caller{UserID: userID}
}
