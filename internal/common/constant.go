package common

// AuthorizationHeaderName is the HTTP header that may carry the session token
// as "Bearer <token>" instead of the JSON body field.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// User fields accepted by validation and update operations.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldLogin    = "login"
)

// FieldKey names the selector of an update request.
const FieldKey = "key"
