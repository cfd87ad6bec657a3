package middleware

import "context"

// contextKey is a private type for context values set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	cartKeyKey   = contextKey("cartKey")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the request
// context. The second return value reports whether one was set.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetCartKeyFromCtx retrieves the resolved cart key from the request context.
func GetCartKeyFromCtx(ctx context.Context) (string, bool) {
	cartKey, ok := ctx.Value(cartKeyKey).(string)
	return cartKey, ok && cartKey != ""
}
