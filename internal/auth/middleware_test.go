package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisboard/redisboard/internal/auth"
	"github.com/redisboard/redisboard/internal/session"
)

// countingValidator counts lookups so tests can assert the gate never
// touches the store for cookie-less requests.
type countingValidator struct {
	calls    int
	username string
	ok       bool
}

func (v *countingValidator) Validate(_ context.Context, _ string) (string, bool) {
	v.calls++
	return v.username, v.ok
}

func TestRequireSession(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := session.UsernameFromContext(r.Context())
		w.Write([]byte(username))
	})

	t.Run("missing cookie redirects without store lookup", func(t *testing.T) {
		validator := &countingValidator{}
		gate := auth.RequireSession(validator, "sessionId")

		rec := httptest.NewRecorder()
		gate(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, auth.LoginPath, rec.Header().Get("Location"))
		assert.Zero(t, validator.calls)
	})

	t.Run("invalid token redirects", func(t *testing.T) {
		validator := &countingValidator{ok: false}
		gate := auth.RequireSession(validator, "sessionId")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sessionId", Value: "bogus"})

		rec := httptest.NewRecorder()
		gate(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, auth.LoginPath, rec.Header().Get("Location"))
		assert.Equal(t, 1, validator.calls)
	})

	t.Run("valid token passes username downstream", func(t *testing.T) {
		validator := &countingValidator{username: "admin", ok: true}
		gate := auth.RequireSession(validator, "sessionId")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sessionId", Value: "good-token"})

		rec := httptest.NewRecorder()
		gate(okHandler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})

	t.Run("empty cookie value treated as missing", func(t *testing.T) {
		validator := &countingValidator{}
		gate := auth.RequireSession(validator, "sessionId")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", "sessionId=")

		rec := httptest.NewRecorder()
		gate(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Zero(t, validator.calls)
	})
}
