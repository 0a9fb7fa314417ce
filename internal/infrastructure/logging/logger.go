package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// RequestIDKey is the context key for request IDs
	RequestIDKey ContextKey = "request_id"
)

// WithRequest returns a context carrying a logger tagged with the request ID.
func WithRequest(ctx context.Context, base zerolog.Logger, requestID string) context.Context {
	if requestID == "" {
		return base.WithContext(ctx)
	}

	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	logger := base.With().Str("request_id", requestID).Logger()

	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or fallback when there is none.
func FromContext(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
