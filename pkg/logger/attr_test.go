package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "user", attr: logger.UserID("u-1"), key: "user_id", want: "u-1"},
		{name: "tenant", attr: logger.TenantID("t-1"), key: "tenant_id", want: "t-1"},
		{name: "entity", attr: logger.EntityID("e-1"), key: "entity_id", want: "e-1"},
		{name: "request", attr: logger.RequestID("r-1"), key: "request_id", want: "r-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	t.Run("empty values produce empty attrs", func(t *testing.T) {
		assert.True(t, logger.UserID("").Equal(slog.Attr{}))
		assert.True(t, logger.TenantID(nil).Equal(slog.Attr{}))
		assert.True(t, logger.EntityID(nil).Equal(slog.Attr{}))
		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	})
}

func TestComponentAndEvent(t *testing.T) {
	assert.Equal(t, "entity_handler", logger.Component("entity_handler").Value.String())
	assert.Equal(t, "entity_updated", logger.Event("entity_updated").Value.String())
}
