package context

import (
	"context"
	"time"
)

const (
	ContextKeyCorrelationID ContextKey = "Correlation-Id"
	DefaultHTTPTimeout                 = 30 * time.Second
)

type ContextKey string

func NewContext(correlationID string) context.Context {
	return context.WithValue(context.Background(), ContextKeyCorrelationID, correlationID)
}

func SetContextWithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) string {
	v := ctx.Value(key)
	if v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
