package session

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Transport moves the session token between client and server.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}

// HeaderTransport uses a request header, "Authorization: Bearer <token>" by default.
type HeaderTransport struct {
	name   string
	prefix string
}

type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix replaces the "Bearer " value prefix. Empty disables it.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) { t.prefix = prefix }
}

func NewHeaderTransport(name string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{name: name, prefix: "Bearer "}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(r.Header.Get(t.name)), t.prefix)
	token := strings.TrimSpace(raw)
	if !ok || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// SetToken also reports the expiry in "<name>-Expires" as RFC 3339.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	h := w.Header()
	h.Set(t.name, t.prefix+token)
	if ttl > 0 {
		h.Set(t.name+"-Expires", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	}
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	h := w.Header()
	h.Del(t.name)
	h.Del(t.name + "-Expires")
	return nil
}

// CookieTransport keeps the token in an HttpOnly, SameSite=Lax cookie.
type CookieTransport struct {
	name   string
	secure bool
}

func NewCookieTransport(name string, secure bool) *CookieTransport {
	return &CookieTransport{name: name, secure: secure}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(t.name); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", ErrSessionNotFound
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, t.cookie(token, int(ttl.Seconds())))
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, t.cookie("", -1))
	return nil
}

func (t *CookieTransport) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     t.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CompositeTransport reads from the first transport that has a token and
// writes through all of them.
type CompositeTransport []Transport

func NewCompositeTransport(transports ...Transport) CompositeTransport {
	return CompositeTransport(transports)
}

func (c CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, t := range c {
		if token, err := t.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}

func (c CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	var errs []error
	for _, t := range c {
		errs = append(errs, t.SetToken(w, token, ttl))
	}
	return errors.Join(errs...)
}

func (c CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var errs []error
	for _, t := range c {
		errs = append(errs, t.ClearToken(w))
	}
	return errors.Join(errs...)
}
