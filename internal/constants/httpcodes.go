// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// headers, and content types. These constants ensure consistent HTTP
// communication patterns across the application.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the requested resource could not be found.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported.
	StatusMethodNotAllowed = 405

	// StatusInternalServerError indicates that the server encountered an unexpected error.
	StatusInternalServerError = 500

	// StatusServiceUnavailable indicates that the server is currently unable to handle the request.
	StatusServiceUnavailable = 503
)

// HTTP Headers define the header names used by the application.
const (
	// HeaderAuthorization carries the bearer token for authenticated requests.
	HeaderAuthorization = "Authorization"

	// HeaderContentType indicates the media type of the request or response body.
	HeaderContentType = "Content-Type"

	// HeaderXRequestID carries the unique request identifier for tracing.
	HeaderXRequestID = "X-Request-ID"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the response may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderReferrerPolicy controls how much referrer information is sent.
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Header values used for responses.
const (
	// ContentTypeJSON is the media type for JSON payloads.
	ContentTypeJSON = "application/json"

	// ContentTypeOptionsNoSniff disables MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny forbids framing of responses.
	FrameOptionsDeny = "DENY"

	// ReferrerPolicyStrictOrigin limits referrer information to the origin.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
)

// BearerTokenPrefix is the prefix of the Authorization header value for bearer tokens.
const BearerTokenPrefix = "Bearer "

// Response success flags used in the standard response envelope.
const (
	// ResponseSuccess marks a successful response.
	ResponseSuccess = true

	// ResponseFailure marks a failed response.
	ResponseFailure = false
)
