// Package ctxlog carries the application's slog.Logger through
// context.Context. It is a thin layer over slog-context so that every package
// fetches its logger the same way.
package ctxlog

import (
	"context"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
)

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return slogctx.NewCtx(ctx, logger)
}

// FromContext extracts the logger from ctx. Without one, slog.Default() is
// returned.
func FromContext(ctx context.Context) *slog.Logger {
	return slogctx.FromCtx(ctx)
}

// With returns a context whose logger carries the extra attributes.
func With(ctx context.Context, args ...any) context.Context {
	return slogctx.With(ctx, args...)
}
