package requestid

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// LoggerExtractor is a logger context extractor for the "request_id" attribute.
func LoggerExtractor() func(context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		return slog.String("request_id", id), id != ""
	}
}
