// Package ctxlog carries a *slog.Logger through a context.Context so that
// deeply nested code logs through the application's configured logger
// instead of the process-wide default.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entries collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default()
// when none was attached. Samples run with a context produced by the app,
// so the fallback only matters in tests that pass a bare context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
