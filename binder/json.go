package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// MaxBodySize caps request bodies read by ReadBody.
const MaxBodySize = 1 << 20

// ReadBody reads at most MaxBodySize bytes of the request body. Larger
// bodies fail with ErrBodyTooLarge, transport failures with ErrBodyRead.
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBodyRead, err)
	}
	if len(raw) > MaxBodySize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, MaxBodySize)
	}
	return raw, nil
}

// DecodeJSON decodes a single JSON object from raw into v.
//
// Unknown keys are ignored and null values leave the target untouched.
// Bodies that are not valid UTF-8 are rejected with ErrInvalidUTF8.
// Type mismatches are reported as *FieldTypeError; everything else that is
// not a well-formed object wraps ErrInvalidJSON.
func DecodeJSON(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, ErrEmptyBody)
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, ErrNotObject)
	}
	// encoding/json would silently replace bad bytes with U+FFFD.
	if !utf8.Valid(trimmed) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, ErrInvalidUTF8)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &FieldTypeError{
				Field:    typeErr.Field,
				Expected: typeErr.Type.Kind().String(),
				Got:      typeErr.Value,
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}
