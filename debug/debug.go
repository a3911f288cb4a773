// Package debug carries a context-scoped debug flag and configures the
// process-wide structured logger from it.
package debug

import (
	"context"
	"log/slog"
	"os"
)

type contextKey struct{}

var enabledKey contextKey

// WithDebug returns a context with debug mode enabled or disabled.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, enabledKey, enabled)
}

// IsEnabled reports whether debug mode is enabled in the context.
func IsEnabled(ctx context.Context) bool {
	enabled, ok := ctx.Value(enabledKey).(bool)
	return ok && enabled
}

// SetupLogger points slog at stderr, at debug level when debug mode is on
// and warning level otherwise.
func SetupLogger(debugEnabled bool) {
	level := slog.LevelWarn
	if debugEnabled {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
