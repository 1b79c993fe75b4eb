package binder

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrInvalidQuery = errors.New("invalid query parameter")
	ErrInvalidPath  = errors.New("invalid path parameter")
	ErrEmptyBody    = errors.New("request body is empty")
	ErrNotObject    = errors.New("request body must be a JSON object")
	ErrInvalidUTF8  = errors.New("request body is not valid UTF-8")
	ErrBodyTooLarge = errors.New("request body too large")
	ErrBodyRead     = errors.New("failed to read request body")
)

// FieldTypeError reports a JSON value whose type does not match the target field.
type FieldTypeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: expected %s, received %s", e.Field, e.Expected, e.Got)
}

// Unwrap lets callers match the error with errors.Is(err, ErrInvalidJSON).
func (e *FieldTypeError) Unwrap() error {
	return ErrInvalidJSON
}
