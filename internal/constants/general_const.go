// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to routing,
// request parameters, and request context. These constants ensure consistent API
// patterns and URL structure throughout the application.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// APIBasePath is the root path prefix for all API endpoints.
	APIBasePath = "/api"

	// PublicBasePath is the root path prefix for unauthenticated public endpoints.
	PublicBasePath = "/public"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath is the endpoint for version information.
	VersionPath = "/version"
)

// URL Parameters define path parameter names used in route definitions.
const (
	// ParamListID is the URL parameter for movie list identifiers.
	ParamListID = "listId"

	// ParamMovieID is the URL parameter for embedded movie identifiers.
	ParamMovieID = "movieId"

	// ParamShareableLink is the URL parameter for public share links.
	ParamShareableLink = "shareableLink"

	// ParamResetToken is the URL parameter for password reset tokens.
	ParamResetToken = "token"
)

// Context Keys define the keys used to store values in the request context.
// The auth package wraps these in its own ContextKey type.
const (
	// UserIDContextKey is the context key for the authenticated user ID.
	UserIDContextKey = "user_id"

	// UsernameContextKey is the context key for the authenticated username.
	UsernameContextKey = "username"

	// EmailContextKey is the context key for the authenticated user's email.
	EmailContextKey = "email"

	// RequestIDContextKey is the context key for the unique request ID.
	RequestIDContextKey = "request_id"
)

// Environment names used to toggle environment-specific behavior.
const (
	// EnvDevelopment is the development environment.
	EnvDevelopment = "development"

	// EnvTesting is the testing environment.
	EnvTesting = "testing"

	// EnvProduction is the production environment.
	EnvProduction = "production"
)

// LogRedactedValue replaces sensitive values in log output.
const LogRedactedValue = "[REDACTED]"
