package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/mocks"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

const testCookieName = "jwt"

// sessionCookie extracts the session cookie from a recorded response, or nil
// if none was set.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestAuthenticateResolvesIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cookie       *http.Cookie
		wantUsername string
		wantHadCookie bool
	}{
		{
			name:         "no cookie means anonymous",
			cookie:       nil,
			wantUsername: "",
		},
		{
			name:          "valid cookie resolves username",
			cookie:        &http.Cookie{Name: testCookieName, Value: "token-for:alice"},
			wantUsername:  "alice",
			wantHadCookie: true,
		},
		{
			name:          "garbage cookie downgrades to anonymous",
			cookie:        &http.Cookie{Name: testCookieName, Value: "not-a-token"},
			wantUsername:  "",
			wantHadCookie: true,
		},
		{
			name:          "empty cookie downgrades to anonymous",
			cookie:        &http.Cookie{Name: testCookieName, Value: ""},
			wantUsername:  "",
			wantHadCookie: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)

			var seen *shared.Session
			handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = shared.SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotNil(t, seen, "session state should always be attached")
			assert.Equal(t, tc.wantUsername, seen.Username)
			assert.Equal(t, tc.wantHadCookie, seen.HadCookie)
		})
	}
}

func TestCookieReissuedForAuthenticatedResponse(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-for:alice"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "authenticated response must carry a fresh token")
	assert.Equal(t, "token-for:alice", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
}

func TestCookieSetWhenHandlerEstablishesIdentity(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Login path: the handler resolves credentials and records the
		// identity; the middleware turns it into a cookie on the way out.
		shared.SessionFromContext(r.Context()).Username = "bob"
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-for:bob", cookie.Value)
}

func TestCookieClearedWhenHandlerDropsIdentity(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Logout path.
		shared.SessionFromContext(r.Context()).Username = ""
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-for:alice"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "logout with an inbound cookie must clear it")
	assert.Empty(t, cookie.Value)
}

func TestInvalidCookieIsCleared(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "a rejected inbound cookie must be cleared")
	assert.Empty(t, cookie.Value)
}

func TestNoCookieTouchedForAnonymousRequest(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Nil(t, sessionCookie(t, rec), "anonymous request without a cookie gets none back")
}

func TestCookieSetEvenOnErrorResponse(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, "task not found")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks/get/nope", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-for:alice"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "error responses still slide the validity window")
	assert.Equal(t, "token-for:alice", cookie.Value)
}

func TestCookieFinalizedWithoutExplicitWrite(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler writes nothing; the server will emit an implicit 200.
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-for:alice"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, sessionCookie(t, rec))
}

func TestEncodeFailureSkipsCookie(t *testing.T) {
	t.Parallel()

	codec := &mocks.MockTokenCodec{
		EncodeFn: func(ctx context.Context, claims auth.Claims) (string, error) {
			return "", errors.New("signing failed")
		},
	}
	mw := NewSessionMiddleware(codec, testCookieName)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.SessionFromContext(r.Context()).Username = "alice"
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "encode failure must not break the response")
	assert.Nil(t, sessionCookie(t, rec))
}
