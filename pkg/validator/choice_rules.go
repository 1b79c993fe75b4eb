package validator

import (
	"fmt"
	"slices"
	"strings"
)

// ValidEnum reports CodeInvalidEnum with the accepted options in the message.
func ValidEnum(field, value string, enumValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(enumValues, value)
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("invalid enum value, expected %s, received '%s'",
				strings.Join(quoteAll(enumValues), " | "), value),
			Code:   CodeInvalidEnum,
			Params: map[string]any{"options": enumValues},
		},
	}
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return out
}
