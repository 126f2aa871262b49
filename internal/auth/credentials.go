// Package auth holds the single admin credential and the request
// gate that keeps unauthenticated traffic away from the dashboard.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Config holds the admin credential, loaded once at startup. The
// password is configured as a bcrypt hash, never in clear text.
type Config struct {
	Username     string `env:"ADMIN_USERNAME,required"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`
}

// Credentials verifies login attempts against the configured admin
// account.
type Credentials struct {
	username     string
	passwordHash []byte
}

// dummyHash is compared against when the username does not match, so
// a wrong username costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// NewCredentials creates a verifier from config.
func NewCredentials(cfg Config) *Credentials {
	return &Credentials{
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
	}
}

// Verify checks a credential pair. Any mismatch yields
// ErrInvalidCredentials without revealing which field was wrong.
// Username comparison is case-sensitive.
func (c *Credentials) Verify(username, password string) error {
	hash := c.passwordHash
	if username != c.username {
		hash = dummyHash
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || username != c.username {
		return ErrInvalidCredentials
	}
	return nil
}
