package storage

import (
	"context"
	"errors"
)

// Healthcheck returns a function that reports whether the store is
// reachable, suitable for liveness and readiness probes.
func Healthcheck(store Store) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := store.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
