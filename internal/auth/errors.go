package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for any username or password
	// mismatch. Deliberately undifferentiated.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
)
