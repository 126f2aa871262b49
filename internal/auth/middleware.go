package auth

import (
	"context"
	"net/http"

	"github.com/redisboard/redisboard/internal/session"
)

// LoginPath is where unauthenticated dashboard requests are sent.
const LoginPath = "/login"

// TokenValidator resolves a session token to a username.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, bool)
}

// RequireSession gates a handler behind a valid session cookie. A
// missing cookie redirects to the login page without touching the
// store; an invalid or expired token redirects after the lookup. On
// success the username is placed in the request context.
func RequireSession(sessions TokenValidator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			username, ok := sessions.Validate(r.Context(), cookie.Value)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			ctx := session.WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
