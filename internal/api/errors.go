package api

import (
	"errors"
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/service"
	"github.com/taskwell/taskwell-api/internal/store"
)

// ErrUnauthenticated indicates a protected route was called without a
// resolved identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// requestError is a failure whose message is already phrased for the client,
// typically malformed or missing request input.
type requestError struct {
	msg string
}

func (e *requestError) Error() string {
	return e.msg
}

// badRequest creates a client-facing request error with the given message.
func badRequest(msg string) error {
	return &requestError{msg: msg}
}

// HandlerFunc is an http.HandlerFunc that reports failure instead of writing
// its own error response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts a HandlerFunc into the error-normalizing pipeline: a returned
// error, whatever its kind, becomes HTTP 400 with the failure's message in
// the body's error field. Validation, authentication, authorization, and
// not-found all collapse into that one shape.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		shared.RespondWithError(w, r, errorMessage(r, err))
	}
}

// errorMessage maps an internal failure to its client-visible message text.
// Recognized failures keep their own message; anything unrecognized is
// logged in full and reported generically so internals never leak.
func errorMessage(r *http.Request, err error) string {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return reqErr.msg
	}

	switch {
	// ErrInvalidStatus gets wrapped with the offending value; strip that
	// back to the bare message before the general validation case runs.
	case errors.Is(err, domain.ErrInvalidStatus):
		return "invalid status"

	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid credentials"

	case errors.Is(err, service.ErrTaskNotFound):
		return "task not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "user already exists"

	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"

	default:
		logger.FromContext(r.Context()).Error("unexpected error while handling request",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		return "internal error"
	}
}
