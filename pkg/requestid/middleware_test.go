package requestid_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/requestid"
)

func serve(t *testing.T, incoming string) (seen string, echoed string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("issues a uuid when absent", func(t *testing.T) {
		t.Parallel()
		seen, echoed := serve(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, echoed)
	})

	t.Run("keeps a well-formed id", func(t *testing.T) {
		t.Parallel()
		seen, echoed := serve(t, "req_2024-abc")
		assert.Equal(t, "req_2024-abc", seen)
		assert.Equal(t, "req_2024-abc", echoed)
	})

	for _, bad := range []string{
		"a@b#c",
		"with space",
		"a/b/c",
		"<script>alert(1)</script>",
		"café",
		strings.Repeat("a", 129),
	} {
		t.Run("replaces "+bad[:min(len(bad), 12)], func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(t, bad)
			assert.NotEqual(t, bad, seen)
			assert.Equal(t, seen, echoed)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, slog.String("request_id", "abc"), attr)
}
