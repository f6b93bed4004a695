package api

import "context"

// contextKey is an unexported type for context keys in this package.
type contextKey string

const (
	bearerContextKey  contextKey = "bearer"
	refreshContextKey contextKey = "refresh"
)

// WithBearer returns a context whose API calls send the given access token.
func WithBearer(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, bearerContextKey, token)
}

// BearerFromContext extracts the access token, if any.
func BearerFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(bearerContextKey).(string)
	return tok
}

// WithRefreshToken returns a context whose API calls carry the upstream
// refresh cookie. Only the auth endpoints read it server-side.
func WithRefreshToken(ctx context.Context, value string) context.Context {
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, refreshContextKey, value)
}

// RefreshTokenFromContext extracts the refresh-cookie value, if any.
func RefreshTokenFromContext(ctx context.Context) string {
	v, _ := ctx.Value(refreshContextKey).(string)
	return v
}
