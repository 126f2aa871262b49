package storage

import "errors"

var (
	ErrMissingConfig     = errors.New("storage.missing_connection_config")
	ErrFailedToParseURL  = errors.New("storage.failed_to_parse_connection_url")
	ErrNotReady          = errors.New("storage.store_did_not_become_ready")
	ErrKeyNotFound       = errors.New("storage.key_not_found")
	ErrHealthcheckFailed = errors.New("storage.healthcheck_failed")
)
