package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell-api/internal/mocks"
)

func TestRecoverMiddlewareConvertsPanic(t *testing.T) {
	t.Parallel()

	handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body["error"])
}

func TestPanicResponseStillCarriesCookie(t *testing.T) {
	t.Parallel()

	// Recovery runs inside the session middleware, so the recovered 400 is
	// written through the cookie-aware writer and the validity window still
	// slides.
	mw := NewSessionMiddleware(&mocks.MockTokenCodec{}, testCookieName)
	handler := mw.Authenticate(RecoverMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-for:alice"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body["error"])

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie, "recovered error response must still re-issue the cookie")
	assert.Equal(t, "token-for:alice", cookie.Value)
}
