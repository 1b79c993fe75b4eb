package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError describes one failed check on one field. Code is stable
// and meant for clients (for example "too_small"), Message is for humans.
type ValidationError struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Params  map[string]any `json:"-"`
}

// ValidationErrors is the error returned by Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and collects all failures. It returns nil when all
// checks pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if err != nil && errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
