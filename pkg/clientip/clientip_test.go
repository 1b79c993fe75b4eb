package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entitykit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "192.0.2.1:5123", "192.0.2.1"},
		{"remote addr without port", nil, "192.0.2.1", "192.0.2.1"},
		{"forwarded first valid", map[string]string{"X-Forwarded-For": "junk, 203.0.113.9, 10.0.0.1"}, "10.0.0.2:1", "203.0.113.9"},
		{"forwarded beats real ip", map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "198.51.100.3"}, "10.0.0.2:1", "203.0.113.9"},
		{"cloudflare", map[string]string{"CF-Connecting-IP": "198.51.100.4"}, "10.0.0.2:1", "198.51.100.4"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.3 "}, "10.0.0.2:1", "198.51.100.3"},
		{"invalid header falls back", map[string]string{"X-Real-IP": "not-an-ip"}, "10.0.0.2:1", "10.0.0.2"},
		{"ipv6", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"ipv4 mapped ipv6", map[string]string{"X-Real-IP": "::ffff:192.0.2.7"}, "", "192.0.2.7"},
		{"garbage", nil, "garbage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	var found bool
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = clientip.Extractor()(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:9999"
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.True(t, found)
	assert.Equal(t, "192.0.2.10", got)

	_, found = clientip.Extractor()(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, found)
}
