package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinLenString counts characters, not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    CodeTooSmall,
			Params:  map[string]any{"min": min},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    CodeTooBig,
			Params:  map[string]any{"max": max},
		},
	}
}

// ValidUTF8 rejects byte sequences that are not valid UTF-8.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.ValidString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be valid UTF-8 text",
			Code:    CodeInvalidValue,
		},
	}
}
