package session

import "errors"

var (
	// ErrIssueFailed indicates the session record could not be written.
	ErrIssueFailed = errors.New("session.issue_failed")

	// ErrEmptyUsername indicates an issue attempt without an owner.
	ErrEmptyUsername = errors.New("session.empty_username")
)
