package middleware

import (
	"net/http"

	"github.com/cinelista/backend/internal/auth"
)

// JWTAuth is a middleware that requires a valid bearer token
func JWTAuth(jwtService auth.JWTValidator) func(http.Handler) http.Handler {
	provider := auth.NewJWTAuthProvider(jwtService)
	return auth.RequireAuth(provider)
}
