package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidSession indicates a session token failed verification: bad
	// signature, malformed token, or expired. Callers never distinguish the
	// three; the authentication middleware swallows this error entirely and
	// downgrades the request to anonymous.
	ErrInvalidSession = errors.New("invalid session token")
)
