package tenant

import "errors"

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")
	ErrMissingIdentifier = errors.New("no tenant identifier in request")
	ErrInactiveTenant    = errors.New("tenant is inactive")
	ErrProviderFailure   = errors.New("tenant provider failure")
	ErrSubdomainTaken    = errors.New("subdomain is already taken")
	ErrNotMember         = errors.New("caller is not a member of the tenant")
)

// IsNotFound reports whether err means the request has no usable tenant.
// A tenant the caller does not belong to counts as not found so its
// existence is not revealed.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrNotMember) ||
		errors.Is(err, ErrInactiveTenant) ||
		errors.Is(err, ErrInvalidIdentifier) ||
		errors.Is(err, ErrMissingIdentifier)
}
