package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entitykit/pkg/session"
)

func TestSession_Valid(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	nilID := uuid.Nil

	tests := []struct {
		name string
		sess *session.Session
		auth bool
		ok   bool
	}{
		{"nil session", nil, false, false},
		{"anonymous", session.NewSession("t", nil, nil, time.Hour), false, false},
		{"nil uuid user", session.NewSession("t", &nilID, nil, time.Hour), false, false},
		{"authenticated", session.NewSession("t", &uid, nil, time.Hour), true, true},
		{"expired", session.NewSession("t", &uid, nil, -time.Second), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.auth, tt.sess.IsAuthenticated())
			assert.Equal(t, tt.ok, tt.sess.Valid())
		})
	}
}

func TestSession_UserIDString(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	assert.Equal(t, uid.String(), session.NewSession("t", &uid, nil, time.Hour).UserIDString())
	assert.Empty(t, session.NewSession("t", nil, nil, time.Hour).UserIDString())

	var nilSession *session.Session
	assert.Empty(t, nilSession.UserIDString())
}

func TestSession_Touch(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	sess := session.NewSession("t", &uid, nil, time.Hour)
	sess.LastActivityAt = time.Now().Add(-time.Hour)

	sess.Touch()
	assert.WithinDuration(t, time.Now(), sess.LastActivityAt, time.Second)

	var nilSession *session.Session
	assert.NotPanics(t, nilSession.Touch)
}

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	uid := uuid.New()

	_, ok := session.UserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := session.WithSession(context.Background(), session.NewSession("t", &uid, nil, time.Hour))
	got, ok := session.UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uid.String(), got)

	ctx = session.WithSession(context.Background(), session.NewSession("t", &uid, nil, -time.Minute))
	_, ok = session.UserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = session.WithSession(context.Background(), session.NewSession("t", nil, nil, time.Hour))
	_, ok = session.UserIDFromContext(ctx)
	assert.False(t, ok)
}
