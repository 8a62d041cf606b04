package requestid

import (
	"context"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const (
	requestIdKey contextKey = "request_id"
)

// WithRequestId adds the request identifier to the context
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIdKey, id)
}

// FromContext extracts the request identifier from the context
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIdKey).(string)
	return id, ok
}
