package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// WithLogger returns a child context carrying a request-scoped logger,
// typically one annotated with the request id.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// From returns the logger carried by ctx. Callers outside a request scope
// get a no-op logger, never nil.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// FromOr returns the logger carried by ctx, or fallback when ctx has none.
func FromOr(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return l
	}
	return fallback
}
