package auth

// JWTValidator abstracts token validation so middleware can be tested with a
// stub implementation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*CustomClaims, error)
}
