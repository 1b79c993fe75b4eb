package validator

// Codes reported in ValidationError.Code.
const (
	CodeRequired     = "required"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeInvalidEnum  = "invalid_enum_value"
	CodeInvalidType  = "invalid_type"
	CodeInvalidValue = "invalid_value"
)
