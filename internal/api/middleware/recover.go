package middleware

import (
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

// RecoverMiddleware is the outer half of error normalization: any panic
// raised while handling a request is converted into the same uniform 400
// error shape the handler-level normalization produces. No failure kind gets
// a distinct transport status.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("panic while handling request",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path)
				shared.RespondWithError(w, r, "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
