// Package cookie wraps net/http cookie handling behind a Manager
// that applies consistent defaults to every cookie it issues. The
// session cookie contract lives here: HttpOnly, SameSite=Strict,
// Path=/, Secure outside local development.
package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager issues and clears cookies with preconfigured defaults.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are HttpOnly, SameSite=Strict,
// Path=/; override with options.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie with the manager defaults, overridable per
// call.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the value of the named request cookie, or
// ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrCookieNotFound
	}
	return cookie.Value, nil
}

// Delete expires the named cookie on the client: empty value,
// negative max-age and an epoch Expires for older user agents.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
