// Package service provides application-level services for user accounts and
// task management, including the ownership checks and the delete idempotency
// cache.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is() to check for specific conditions; the API layer
// flattens every one of them into the uniform 400 error response.
var (
	// ErrInvalidCredentials indicates a login attempt with an unknown
	// username or a non-matching password. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotFound indicates the requested task does not exist or is
	// owned by a different user. Ownership mismatch and absence are
	// deliberately indistinguishable to the caller.
	ErrTaskNotFound = errors.New("task not found")
)
