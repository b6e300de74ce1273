package domain

import "errors"

// ErrValidation is the common ancestor of all domain validation failures.
// Callers match it with errors.Is when the specific failure does not matter;
// the API layer surfaces the concrete message of whichever sentinel fired.
var ErrValidation = errors.New("validation failed")

// validationError is a concrete validation failure. Its message is the exact
// client-visible text, and it matches ErrValidation under errors.Is.
type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation
}

// Common domain errors used across the application.
var (
	// ErrEmptyUsername is returned when a username is empty.
	ErrEmptyUsername error = &validationError{msg: "username is empty"}

	// ErrEmptyPassword is returned when a password is empty.
	ErrEmptyPassword error = &validationError{msg: "password is empty"}

	// ErrEmptySearchText is returned when a search is attempted with empty text.
	ErrEmptySearchText error = &validationError{msg: "text is empty"}

	// ErrNegativeCount is returned when a list is requested with a negative limit.
	ErrNegativeCount error = &validationError{msg: "count is negative"}

	// ErrInvalidStatus is returned when a task status string is not one of
	// the known status values.
	ErrInvalidStatus error = &validationError{msg: "invalid status"}
)
