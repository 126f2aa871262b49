package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/redisboard/redisboard/internal/storage"
)

// Manager maps opaque tokens to usernames through the store. Expiry
// is delegated to the store entirely: a token whose record is gone is
// simply not authenticated, whether it was revoked or timed out.
type Manager struct {
	store  storage.Store
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithTTL overrides the session lifetime.
func WithTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("WithTTL: duration must be > 0")
	}
	return func(m *Manager) { m.ttl = ttl }
}

// WithLogger supplies a logger for store failures that Validate and
// Revoke swallow.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a Manager on top of the given store.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		ttl:    DefaultConfig().Duration,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue generates a new token and writes its record to the store with
// the configured expiry. The caller must not hand the token to the
// client if Issue fails.
func (m *Manager) Issue(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", ErrEmptyUsername
	}

	token := uuid.NewString()
	if err := m.store.Set(ctx, Key(token), username, m.ttl); err != nil {
		return "", errors.Join(ErrIssueFailed, err)
	}
	return token, nil
}

// Validate resolves a token to its owning username. It reports not
// authenticated both for an absent record and for a store read
// failure; the failure is logged, never surfaced. Fail-closed.
func (m *Manager) Validate(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	username, err := m.store.Get(ctx, Key(token))
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.ErrorContext(ctx, "session lookup failed", slog.Any("error", err))
		}
		return "", false
	}
	return username, true
}

// Revoke deletes the token's record. Revoking an absent or already
// revoked token is a no-op.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, Key(token)); err != nil {
		m.logger.ErrorContext(ctx, "session revoke failed", slog.Any("error", err))
		return err
	}
	return nil
}
