package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sessionId"`

	// Duration is how long an issued session stays valid. The store
	// expires the record on its own after this long.
	Duration time.Duration `env:"SESSION_DURATION" envDefault:"168h"`

	// SecureCookies enables the Secure flag on session cookies.
	// Disabled only for local development over plain HTTP.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"true"`
}

// DefaultConfig returns default session configuration: a 7-day
// session behind a secure "sessionId" cookie.
func DefaultConfig() Config {
	return Config{
		CookieName:    "sessionId",
		Duration:      7 * 24 * time.Hour,
		SecureCookies: true,
	}
}
