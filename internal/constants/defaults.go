// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default configuration values, limits, and timing
// parameters. Changes to these values may significantly impact application
// behavior and security.
package constants

import "time"

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultJWTIssuer is the default issuer claim for bearer tokens.
	DefaultJWTIssuer = "cinelista-api"
)

// Timeouts define timing parameters for server and maintenance operations.
const (
	// DefaultReadTimeout is the maximum duration for reading a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration for writing a response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum duration to keep idle connections open.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout is the grace period for in-flight requests on shutdown.
	DefaultShutdownTimeout = 20 * time.Second

	// DBMaintenanceInterval is how often the maintenance loop clears expired reset tokens.
	DBMaintenanceInterval = 1 * time.Hour
)

// Security parameters for tokens and credentials.
const (
	// DefaultJWTExpiry is the lifetime of an issued bearer token.
	DefaultJWTExpiry = 1 * time.Hour

	// PasswordResetTokenDuration is the lifetime of a password reset token.
	PasswordResetTokenDuration = 1 * time.Hour

	// ResetTokenByteLength is the entropy, in bytes, of a generated reset token.
	ResetTokenByteLength = 32

	// MaxRequestBodySize is the maximum accepted request body size in bytes.
	MaxRequestBodySize = 1 << 20
)

// Database table names for the two persisted collections.
const (
	// TableUsers is the users table.
	TableUsers = "users"

	// TableMovieLists is the movie lists table, with movies embedded as JSONB.
	TableMovieLists = "movie_lists"
)
