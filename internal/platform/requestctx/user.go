// Package requestctx carries visitor identity through a request context.
package requestctx

import (
	"context"
	"strings"
)

// userIDContextKey is the context key for the site's own visitor id.
type userIDContextKey struct{}

// WithUserID stores a visitor identifier in context. Blank ids are ignored.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the visitor identifier stored in context.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(userIDContextKey{}).(string)
	return value
}
