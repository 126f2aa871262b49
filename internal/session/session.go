// Package session issues, validates and revokes opaque session
// tokens backed by the key-value store. A session record lives under
// the "session:" namespace with a store-managed expiry; its value is
// the owning username.
package session

import "strings"

// Prefix is the key namespace reserved for session records. Keys
// under it are owned exclusively by the Manager and must never be
// exposed as dashboard data.
const Prefix = "session:"

// Key returns the store key for a session token.
func Key(token string) string {
	return Prefix + token
}

// IsSessionKey reports whether a store key belongs to the session
// namespace.
func IsSessionKey(key string) bool {
	return strings.HasPrefix(key, Prefix)
}
