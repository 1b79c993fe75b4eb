package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entitykit/handler"
)

type callerKey struct{}

func TestContext(t *testing.T) {
	t.Parallel()

	base, cancel := context.WithCancel(context.WithValue(context.Background(), callerKey{}, "user-1"))
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, r)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "user-1", ctx.Value(callerKey{}))
	assert.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
