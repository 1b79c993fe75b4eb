// Package logger builds *slog.Logger instances with functional options and
// keeps attribute naming consistent across the service.
//
// New picks a text or JSON handler and wraps it with a context handler,
// which runs registered ContextExtractor callbacks on every record. This is
// how request ids and tenant ids end up on log lines without threading them
// through every call:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "entityd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "entity updated", logger.EntityID(id))
//
// Attribute helpers such as Error and UserID return an empty slog.Attr for
// empty input, so callers can pass them unconditionally.
package logger
