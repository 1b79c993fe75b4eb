package entity

import (
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/entitykit/pkg/validator"
)

const (
	NameMinLength = 1
	NameMaxLength = 255
)

// UpdateInput is a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Name         *string `json:"name,omitempty"`
	LegalForm    *string `json:"legalForm,omitempty"`
	Status       *Status `json:"status,omitempty"`
	ActivityCode *string `json:"activityCode,omitempty"`
}

// IsEmpty reports whether the input changes nothing.
func (in UpdateInput) IsEmpty() bool {
	return in.Name == nil && in.LegalForm == nil && in.Status == nil && in.ActivityCode == nil
}

// Normalize converts present text fields to Unicode NFC so lengths and
// stored values do not depend on how the client composed characters.
func (in UpdateInput) Normalize() UpdateInput {
	out := in
	out.Name = nfc(in.Name)
	out.LegalForm = nfc(in.LegalForm)
	out.ActivityCode = nfc(in.ActivityCode)
	return out
}

func nfc(s *string) *string {
	if s == nil {
		return nil
	}
	v := norm.NFC.String(*s)
	return &v
}

// Validate checks every present field and returns validator.ValidationErrors.
// Field names match the JSON keys. The UTF-8 checks guard Go callers such as
// Create; HTTP bodies with invalid bytes are already refused by the binder.
func (in UpdateInput) Validate() error {
	var rules []validator.Rule

	if in.Name != nil {
		rules = append(rules,
			validator.ValidUTF8("name", *in.Name),
			validator.MinLenString("name", *in.Name, NameMinLength),
			validator.MaxLenString("name", *in.Name, NameMaxLength),
		)
	}
	if in.LegalForm != nil {
		rules = append(rules, validator.ValidUTF8("legalForm", *in.LegalForm))
	}
	if in.Status != nil {
		rules = append(rules, validator.ValidEnum("status", string(*in.Status), statusStrings()))
	}
	if in.ActivityCode != nil {
		rules = append(rules, validator.ValidUTF8("activityCode", *in.ActivityCode))
	}

	return validator.Apply(rules...)
}

// fields lists the JSON names of the present fields.
func (in UpdateInput) fields() []string {
	var out []string
	if in.Name != nil {
		out = append(out, "name")
	}
	if in.LegalForm != nil {
		out = append(out, "legalForm")
	}
	if in.Status != nil {
		out = append(out, "status")
	}
	if in.ActivityCode != nil {
		out = append(out, "activityCode")
	}
	return out
}

// apply copies present fields onto e and reports whether anything changed.
func (in UpdateInput) apply(e *Entity) bool {
	changed := false
	if in.Name != nil && *in.Name != e.Name {
		e.Name = *in.Name
		changed = true
	}
	if in.LegalForm != nil && *in.LegalForm != e.LegalForm {
		e.LegalForm = *in.LegalForm
		changed = true
	}
	if in.ActivityCode != nil && *in.ActivityCode != e.ActivityCode {
		e.ActivityCode = *in.ActivityCode
		changed = true
	}
	if in.Status != nil && *in.Status != e.Status {
		e.Status = *in.Status
		changed = true
	}
	return changed
}
