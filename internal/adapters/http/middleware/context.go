// Package middleware provides the gin middleware chain of the trivia API.
package middleware

import (
	"context"

	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
)

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// RequestIDFromContext returns the request id stored by RequestID, so
// upstream clients can forward it.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation id stored by CorrelationID.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

func withRequestID(ctx context.Context, id string) context.Context {
	return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
}

func withCorrelationID(ctx context.Context, id string) context.Context {
	return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
