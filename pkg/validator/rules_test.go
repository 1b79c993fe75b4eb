package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entitykit/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"min empty", validator.MinLenString("f", "", 1), false},
		{"min ok", validator.MinLenString("f", "a", 1), true},
		{"min counts runes", validator.MinLenString("f", "é", 2), false},
		{"max at limit", validator.MaxLenString("f", strings.Repeat("a", 255), 255), true},
		{"max over limit", validator.MaxLenString("f", strings.Repeat("a", 256), 255), false},
		{"max counts runes", validator.MaxLenString("f", strings.Repeat("é", 255), 255), true},
		{"utf8 ok", validator.ValidUTF8("f", "Société"), true},
		{"utf8 invalid", validator.ValidUTF8("f", string([]byte{0xff, 0xfe})), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	statuses := []string{"ACTIVE", "ARCHIVED"}

	t.Run("enum accepts member", func(t *testing.T) {
		assert.True(t, validator.ValidEnum("status", "ACTIVE", statuses).Check())
	})

	t.Run("enum rejects non-member with options in message", func(t *testing.T) {
		rule := validator.ValidEnum("status", "DELETED", statuses)
		assert.False(t, rule.Check())
		assert.Equal(t, validator.CodeInvalidEnum, rule.Error.Code)
		assert.Equal(t, "invalid enum value, expected 'ACTIVE' | 'ARCHIVED', received 'DELETED'", rule.Error.Message)
	})
}
