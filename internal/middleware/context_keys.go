package middleware

import "context"

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	userIDCtxKey   = contextKey("userID")
	userNameCtxKey = contextKey("userName")
	permsCtxKey    = contextKey("permissions")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetUserNameFromCtx retrieves the authenticated user's display name.
func GetUserNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(userNameCtxKey).(string)
	return name
}

// GetPermissionsFromCtx retrieves the authenticated user's permissions.
func GetPermissionsFromCtx(ctx context.Context) []string {
	perms, _ := ctx.Value(permsCtxKey).([]string)
	return perms
}
