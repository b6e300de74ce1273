package middleware

import (
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

// SessionMiddleware establishes identity from the session cookie on the way
// in and rewrites the cookie from the final identity on the way out. There is
// no server-side session table: identity is reconstructed from the signed
// token on every request, and every response with a resolved identity
// re-issues a fresh token, sliding the validity window.
type SessionMiddleware struct {
	codec      auth.TokenCodec
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware with the given codec
// and cookie name.
func NewSessionMiddleware(codec auth.TokenCodec, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		codec:      codec,
		cookieName: cookieName,
	}
}

// Authenticate resolves the request's identity and attaches mutable session
// state to the request context. Any cookie decode failure silently downgrades
// the request to anonymous; a bad cookie never aborts the request.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := &shared.Session{}

		if cookie, err := r.Cookie(m.cookieName); err == nil {
			session.HadCookie = true

			claims, err := m.codec.Decode(r.Context(), cookie.Value)
			if err == nil {
				session.Username = claims.Username
			} else {
				// Fail open: bad signature, malformed token, and expiry all
				// resolve to anonymous without surfacing an error.
				logger.FromContext(r.Context()).Debug(
					"session cookie rejected, continuing as anonymous")
			}
		}

		ctx := shared.WithSession(r.Context(), session)
		cw := &cookieWriter{
			ResponseWriter: w,
			request:        r,
			session:        session,
			codec:          m.codec,
			cookieName:     m.cookieName,
		}

		next.ServeHTTP(cw, r.WithContext(ctx))

		// If the handler never wrote, the cookie decision still has to land
		// before the server writes the implicit 200.
		cw.finalize()
	})
}

// cookieWriter defers the Set-Cookie decision until the first byte of the
// response, so it reflects the identity state the handler left behind, even
// when the response being written is an error response.
type cookieWriter struct {
	http.ResponseWriter
	request    *http.Request
	session    *shared.Session
	codec      auth.TokenCodec
	cookieName string
	finalized  bool
}

func (w *cookieWriter) WriteHeader(status int) {
	w.finalize()
	w.ResponseWriter.WriteHeader(status)
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.finalize()
	return w.ResponseWriter.Write(b)
}

// finalize applies the outbound cookie protocol exactly once:
// non-anonymous identity re-signs and re-issues; anonymous with an inbound
// cookie clears it; anonymous without one leaves cookies untouched.
func (w *cookieWriter) finalize() {
	if w.finalized {
		return
	}
	w.finalized = true

	if w.session.Authenticated() {
		token, err := w.codec.Encode(
			w.request.Context(),
			auth.Claims{Username: w.session.Username},
		)
		if err != nil {
			// The response is already on its way; the client keeps its old
			// cookie and the next request re-authenticates from it.
			logger.FromContext(w.request.Context()).Error(
				"failed to re-issue session token",
				"error", err,
				"username", w.session.Username)
			return
		}

		http.SetCookie(w.ResponseWriter, &http.Cookie{
			Name:  w.cookieName,
			Value: token,
			Path:  "/",
		})
		return
	}

	if w.session.HadCookie {
		http.SetCookie(w.ResponseWriter, &http.Cookie{
			Name:  w.cookieName,
			Value: "",
			Path:  "/",
		})
	}
}
