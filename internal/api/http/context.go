package http

import (
	"context"

	"internship-board-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "user_claims"

// withClaims attaches validated token claims to the request context.
func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated caller's claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}
