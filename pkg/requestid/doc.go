// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reads X-Request-ID, validates it and falls back to a fresh
// UUIDv4. The id is stored in the request context (FromContext), echoed in
// the response header and can be injected into slog records through
// LoggerExtractor.
package requestid
