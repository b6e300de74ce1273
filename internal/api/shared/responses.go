package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse defines the standard error response structure. Every failure
// surfaced to a client uses this shape with HTTP 400, regardless of kind.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the uniform client-visible error response: always
// HTTP 400 with the message in the body's error field. Bad input,
// unauthenticated, forbidden, and not-found all collapse to this shape; the
// transport status deliberately carries no distinction.
func RespondWithError(w http.ResponseWriter, r *http.Request, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: message})
}
