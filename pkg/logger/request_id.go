package logger

import (
	"context"

	"github.com/google/uuid"
)

// NewRequestID generates a fresh request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID stores id in ctx. An empty id is replaced by a new one.
func ContextWithRequestID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = NewRequestID()
	}
	return context.WithValue(ctx, RequestIDKey, id), id
}
