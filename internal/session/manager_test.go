package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redisboard/redisboard/internal/session"
	"github.com/redisboard/redisboard/internal/storage"
)

// mockStore records store interactions for failure-path tests.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *mockStore) MGet(ctx context.Context, keys []string) ([]*string, error) {
	args := m.Called(ctx, keys)
	values, _ := args.Get(0).([]*string)
	return values, args.Error(1)
}

func (m *mockStore) TTL(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStore) Close() error {
	return m.Called().Error(0)
}

func TestManager_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("issued token validates to its owner", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		token, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		username, ok := mgr.Validate(ctx, token)
		assert.True(t, ok)
		assert.Equal(t, "admin", username)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		first, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)
		second, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("record lives under session namespace with expiry", func(t *testing.T) {
		store := storage.NewMemoryStore()
		mgr := session.NewManager(store, session.WithTTL(time.Hour))

		token, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)

		keys, err := store.Keys(ctx, "session:*")
		require.NoError(t, err)
		require.Equal(t, []string{session.Key(token)}, keys)

		ttl, err := store.TTL(ctx, session.Key(token))
		require.NoError(t, err)
		assert.InDelta(t, 3600, ttl, 2)
	})

	t.Run("empty username", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		_, err := mgr.Issue(ctx, "")
		assert.ErrorIs(t, err, session.ErrEmptyUsername)
	})

	t.Run("store write failure", func(t *testing.T) {
		store := new(mockStore)
		store.On("Set", mock.Anything, mock.Anything, "admin", mock.Anything).
			Return(errors.New("connection reset"))

		mgr := session.NewManager(store)

		_, err := mgr.Issue(ctx, "admin")
		assert.ErrorIs(t, err, session.ErrIssueFailed)
		store.AssertExpectations(t)
	})
}

func TestManager_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		_, ok := mgr.Validate(ctx, "never-issued")
		assert.False(t, ok)
	})

	t.Run("empty token short-circuits without store call", func(t *testing.T) {
		store := new(mockStore)
		mgr := session.NewManager(store)

		_, ok := mgr.Validate(ctx, "")
		assert.False(t, ok)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("expired token", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore(), session.WithTTL(time.Millisecond))

		token, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		_, ok := mgr.Validate(ctx, token)
		assert.False(t, ok)
	})

	t.Run("store read failure fails closed", func(t *testing.T) {
		store := new(mockStore)
		store.On("Get", mock.Anything, mock.Anything).
			Return("", errors.New("connection reset"))

		mgr := session.NewManager(store)

		_, ok := mgr.Validate(ctx, "some-token")
		assert.False(t, ok)
	})
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked token no longer validates", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		token, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)

		require.NoError(t, mgr.Revoke(ctx, token))

		_, ok := mgr.Validate(ctx, token)
		assert.False(t, ok)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		mgr := session.NewManager(storage.NewMemoryStore())

		token, err := mgr.Issue(ctx, "admin")
		require.NoError(t, err)

		require.NoError(t, mgr.Revoke(ctx, token))
		assert.NoError(t, mgr.Revoke(ctx, token))
		assert.NoError(t, mgr.Revoke(ctx, "never-issued"))
	})
}

func TestIsSessionKey(t *testing.T) {
	assert.True(t, session.IsSessionKey("session:abc"))
	assert.False(t, session.IsSessionKey("sessions"))
	assert.False(t, session.IsSessionKey("app:data"))
}
