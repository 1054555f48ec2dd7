// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines machine-readable error codes and user-facing
// messages. Messages are crafted to be informative without revealing whether a
// resource exists to a caller who does not own it.
package constants

// Error Codes are machine-readable identifiers included in error responses.
const (
	// CodeBadRequest identifies a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeValidationError identifies a failed input validation.
	CodeValidationError = "validation_error"

	// CodeDuplicateResource identifies an attempt to create a resource that already exists.
	CodeDuplicateResource = "duplicate_resource"

	// CodeUnauthorized identifies a request lacking valid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeInvalidCredentials identifies a failed login attempt.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeForbidden identifies a request that is authenticated but not permitted.
	CodeForbidden = "forbidden"

	// CodeNotFound identifies a missing or unowned resource.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed identifies an unsupported request method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeTokenExpired identifies an expired authentication token.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid identifies a malformed or tampered authentication token.
	CodeTokenInvalid = "token_invalid"

	// CodeDeliveryFailed identifies a failed outbound email delivery.
	CodeDeliveryFailed = "delivery_failed"

	// CodeInternalError identifies an unexpected internal error.
	CodeInternalError = "internal_error"
)

// User-facing messages for common failures.
const (
	// MsgAuthRequired is returned when authentication is missing.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidToken is returned when the bearer token fails verification.
	MsgInvalidToken = "Invalid token"

	// MsgTokenExpired is returned when the bearer token has expired.
	MsgTokenExpired = "Token has expired"

	// MsgInvalidCredentials is returned on any failed login, regardless of cause.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgResourceNotFound is returned for missing or unowned resources.
	MsgResourceNotFound = "Resource not found"

	// MsgListNotFound is returned when a movie list is absent or not owned by the caller.
	MsgListNotFound = "Movie list not found"

	// MsgMovieNotFound is returned when an embedded movie is absent from its list.
	MsgMovieNotFound = "Movie not found in list"

	// MsgUserNotFound is returned when a user record is absent.
	MsgUserNotFound = "User not found"

	// MsgInvalidResetToken is returned when a password reset token is invalid or expired.
	MsgInvalidResetToken = "Invalid or expired reset token"

	// MsgResetEmailSent is returned after a successful password reset request.
	MsgResetEmailSent = "Password reset email sent"

	// MsgResetEmailFailed is returned when the reset email could not be delivered.
	MsgResetEmailFailed = "Failed to send password reset email"

	// MsgPasswordReset is returned after a successful password reset.
	MsgPasswordReset = "Password has been reset successfully"

	// MsgUserDeleted is returned after a successful account deletion.
	MsgUserDeleted = "User removed"

	// MsgListDeleted is returned after a successful list deletion.
	MsgListDeleted = "Movie list removed"

	// MsgMovieDeleted is returned after a movie is removed from a list.
	MsgMovieDeleted = "Movie removed from list"

	// MsgMethodNotAllowed is returned for unsupported request methods.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned for unexpected internal errors.
	MsgInternalServerError = "An internal server error occurred"

	// MsgEmptyRequestBody is returned when a JSON body was expected but absent.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON is returned when the request body is not valid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgRequestBodyTooLarge is returned when the request body exceeds the size limit.
	MsgRequestBodyTooLarge = "Request body must not be larger than 1MB"
)
