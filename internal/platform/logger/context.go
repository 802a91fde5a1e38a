package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is an unexported type for the context key, preventing
// collisions with keys defined in other packages.
type loggerContextKey struct{}

// WithLogger returns a new context carrying the given logger. Middleware
// uses this to attach a request-scoped logger (e.g., one enriched with a
// trace ID) that downstream components can retrieve.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the logger from the context, if one was attached.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default, and finally to slog.Default when both are nil.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
