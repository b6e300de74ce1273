package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the type for context values stored by the API layer.
type ContextKey string

// Context keys for request-scoped values.
const (
	// SessionContextKey is the context key for the request's session state.
	SessionContextKey ContextKey = "session"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// Session is the per-request identity state. The authentication middleware
// initializes it from the inbound cookie; handlers may overwrite Username
// (login sets it, logout clears it) to change what gets persisted back to
// the client on the way out.
type Session struct {
	// Username is the resolved identity; empty means anonymous.
	Username string

	// HadCookie records whether the request arrived with a session cookie,
	// valid or not. It decides between clearing the cookie and leaving
	// cookies untouched when the final identity is anonymous.
	HadCookie bool
}

// Authenticated reports whether the session has a resolved identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Username != ""
}

// WithSession returns a copy of ctx carrying the session state. The pointer
// is shared: mutations by handlers are visible to the middleware afterwards.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// SessionFromContext retrieves the session state from the context.
// Returns nil when no authentication middleware ran for this request.
func SessionFromContext(ctx context.Context) *Session {
	session, ok := ctx.Value(SessionContextKey).(*Session)
	if !ok {
		return nil
	}
	return session
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string (16 bytes).
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
