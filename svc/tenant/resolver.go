package tenant

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dmitrymomot/entitykit/pkg/session"
)

const (
	// MaxIdentifierLength bounds identifiers to a DNS label.
	MaxIdentifierLength = 63
	// uuidLength is the canonical textual uuid length, accepted from headers and sessions.
	uuidLength = 36
)

// identifierPattern allows an alphanumeric start followed by alphanumerics and hyphens.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// Resolver extracts a tenant identifier from the request.
// Returns "" if the request carries none, an error if the value is malformed.
type Resolver func(r *http.Request) (string, error)

func isValidIdentifier(id string) bool {
	if id == "" || len(id) > max(MaxIdentifierLength, uuidLength) {
		return false
	}
	return identifierPattern.MatchString(id)
}

func isValidSubdomain(id string) bool {
	if id == "" || len(id) > MaxIdentifierLength {
		return false
	}
	return identifierPattern.MatchString(id)
}

// NewSessionResolver takes the tenant bound to the request's session.
func NewSessionResolver() Resolver {
	return func(r *http.Request) (string, error) {
		sess, ok := session.FromContext(r.Context())
		if !ok || sess.TenantID == nil {
			return "", nil
		}
		return sess.TenantID.String(), nil
	}
}

// NewHeaderResolver reads the identifier from headerName, "X-Tenant-ID" by default.
func NewHeaderResolver(headerName string) Resolver {
	if headerName == "" {
		headerName = "X-Tenant-ID"
	}

	return func(r *http.Request) (string, error) {
		value := strings.TrimSpace(r.Header.Get(headerName))
		if value == "" {
			return "", nil
		}
		if !isValidIdentifier(value) {
			return "", fmt.Errorf("%w: header value %q", ErrInvalidIdentifier, value)
		}
		return value, nil
	}
}

// NewSubdomainResolver extracts the first label of the host, optionally
// stripping suffix (e.g. ".example.com"). Bare domains and "www" yield "".
func NewSubdomainResolver(suffix string) Resolver {
	return func(r *http.Request) (string, error) {
		host := r.Host
		if idx := strings.LastIndex(host, ":"); idx != -1 {
			host = host[:idx]
		}

		originalParts := strings.Split(host, ".")
		if len(originalParts) < 3 {
			return "", nil
		}

		if suffix != "" && strings.HasSuffix(host, suffix) && len(host) > len(suffix) {
			host = host[:len(host)-len(suffix)]
		}

		parts := strings.Split(host, ".")
		subdomain := parts[0]
		if subdomain == "www" {
			if len(parts) < 2 {
				return "", nil
			}
			subdomain = parts[1]
		}

		subdomain = strings.TrimSpace(subdomain)
		if subdomain == "" {
			return "", nil
		}
		if !isValidSubdomain(subdomain) {
			return "", fmt.Errorf("%w: subdomain %q", ErrInvalidIdentifier, subdomain)
		}
		return subdomain, nil
	}
}

// NewCompositeResolver returns the first non-empty identifier.
// Errors are collected and only returned when no resolver succeeds.
func NewCompositeResolver(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, error) {
		var errs []error

		for _, resolver := range resolvers {
			id, err := resolver(r)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if id != "" {
				return id, nil
			}
		}

		if len(errs) > 0 {
			return "", errors.Join(errs...)
		}
		return "", nil
	}
}
