package tenant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Lookup resolves the tenant of a request: resolver, then cache, then provider.
type Lookup struct {
	resolver      Resolver
	provider      Provider
	cache         Cache
	authorize     Authorizer
	requireActive bool
	log           *slog.Logger
}

// Authorizer decides whether the request behind ctx may act within t.
type Authorizer func(ctx context.Context, t *Tenant) error

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

func WithCache(c Cache) LookupOption {
	return func(l *Lookup) {
		if c != nil {
			l.cache = c
		}
	}
}

// WithRequireActive rejects inactive tenants with ErrInactiveTenant. Enabled by default.
func WithRequireActive(require bool) LookupOption {
	return func(l *Lookup) {
		l.requireActive = require
	}
}

// WithAuthorizer checks every resolved tenant, cached or not. Without it any
// resolvable tenant is accepted.
func WithAuthorizer(a Authorizer) LookupOption {
	return func(l *Lookup) {
		l.authorize = a
	}
}

func WithLogger(log *slog.Logger) LookupOption {
	return func(l *Lookup) {
		if log != nil {
			l.log = log
		}
	}
}

func NewLookup(resolver Resolver, provider Provider, opts ...LookupOption) *Lookup {
	l := &Lookup{
		resolver:      resolver,
		provider:      provider,
		cache:         NoOpCache{},
		requireActive: true,
		log:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the tenant for r. A tenant already placed in the request
// context by Middleware is reused.
func (l *Lookup) Resolve(ctx context.Context, r *http.Request) (*Tenant, error) {
	if t, ok := FromContext(ctx); ok {
		return l.check(ctx, t)
	}

	identifier, err := l.resolver(r)
	if err != nil {
		return nil, err
	}
	if identifier == "" {
		return nil, ErrMissingIdentifier
	}

	if t, ok := l.cache.Get(ctx, identifier); ok {
		return l.check(ctx, t)
	}

	t, err := l.provider.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrProviderFailure, err)
	}

	if err := l.cache.Set(ctx, identifier, t); err != nil {
		l.log.WarnContext(ctx, "failed to cache tenant",
			logger.Error(err), logger.TenantID(t.ID), logger.Component("tenant"))
	}

	return l.check(ctx, t)
}

func (l *Lookup) check(ctx context.Context, t *Tenant) (*Tenant, error) {
	if l.requireActive && !t.Active {
		return nil, ErrInactiveTenant
	}
	if l.authorize != nil {
		if err := l.authorize(ctx, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Invalidate drops cached entries for the given identifiers.
func (l *Lookup) Invalidate(ctx context.Context, identifiers ...string) error {
	var errs []error
	for _, id := range identifiers {
		errs = append(errs, l.cache.Delete(ctx, id))
	}
	return errors.Join(errs...)
}
