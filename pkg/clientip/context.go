package clientip

import "context"

type clientIPContextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}

// Extractor adapts FromContext to the (value, found) shape used by audit extractors.
func Extractor() func(context.Context) (string, bool) {
	return func(ctx context.Context) (string, bool) {
		ip := FromContext(ctx)
		return ip, ip != ""
	}
}
