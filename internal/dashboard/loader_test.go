package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redisboard/redisboard/internal/dashboard"
	"github.com/redisboard/redisboard/internal/storage"
)

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

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with ttl", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Set(ctx, "b", "2", 2*time.Minute))

		entries, timings := dashboard.NewLoader(store, nil).Load(ctx)

		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].Key)
		assert.Equal(t, "1", entries[0].Value)
		assert.Equal(t, storage.TTLNoExpiry, entries[0].TTL)
		assert.Equal(t, "b", entries[1].Key)
		assert.Equal(t, "2", entries[1].Value)
		assert.InDelta(t, 120, entries[1].TTL, 1)

		require.NotNil(t, timings.ConnectMillis)
		require.NotNil(t, timings.FetchMillis)
		assert.GreaterOrEqual(t, *timings.FetchMillis, 0.0)
	})

	t.Run("session keys are never listed", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Set(ctx, "session:xyz", "admin", 0))
		require.NoError(t, store.Set(ctx, "b", "2", 0))

		entries, _ := dashboard.NewLoader(store, nil).Load(ctx)

		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.NotContains(t, e.Key, "session:")
		}
	})

	t.Run("empty store", func(t *testing.T) {
		entries, timings := dashboard.NewLoader(storage.NewMemoryStore(), nil).Load(ctx)
		assert.Empty(t, entries)
		assert.NotNil(t, timings.ConnectMillis)
		assert.NotNil(t, timings.FetchMillis)
	})

	t.Run("unreachable store renders empty with no timings", func(t *testing.T) {
		store := new(mockStore)
		store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		entries, timings := dashboard.NewLoader(store, nil).Load(ctx)

		assert.Empty(t, entries)
		assert.Nil(t, timings.ConnectMillis)
		assert.Nil(t, timings.FetchMillis)
		store.AssertNotCalled(t, "Keys", mock.Anything, mock.Anything)
	})

	t.Run("enumeration failure keeps connect timing only", func(t *testing.T) {
		store := new(mockStore)
		store.On("Ping", mock.Anything).Return(nil)
		store.On("Keys", mock.Anything, "*").Return(nil, errors.New("scan failed"))

		entries, timings := dashboard.NewLoader(store, nil).Load(ctx)

		assert.Empty(t, entries)
		assert.NotNil(t, timings.ConnectMillis)
		assert.Nil(t, timings.FetchMillis)
	})

	t.Run("bulk fetch failure degrades to empty entries", func(t *testing.T) {
		store := new(mockStore)
		store.On("Ping", mock.Anything).Return(nil)
		store.On("Keys", mock.Anything, "*").Return([]string{"a", "b"}, nil)
		store.On("MGet", mock.Anything, []string{"a", "b"}).Return(nil, errors.New("mget failed"))
		store.On("TTL", mock.Anything, mock.Anything).Return(storage.TTLNoExpiry, nil)

		entries, timings := dashboard.NewLoader(store, nil).Load(ctx)

		assert.Empty(t, entries)
		assert.NotNil(t, timings.ConnectMillis)
		assert.NotNil(t, timings.FetchMillis)
	})

	t.Run("missing values normalize to empty string", func(t *testing.T) {
		one := "1"
		store := new(mockStore)
		store.On("Ping", mock.Anything).Return(nil)
		store.On("Keys", mock.Anything, "*").Return([]string{"a", "gone"}, nil)
		store.On("MGet", mock.Anything, []string{"a", "gone"}).Return([]*string{&one, nil}, nil)
		store.On("TTL", mock.Anything, "a").Return(storage.TTLNoExpiry, nil)
		store.On("TTL", mock.Anything, "gone").Return(storage.TTLKeyMissing, nil)

		entries, _ := dashboard.NewLoader(store, nil).Load(ctx)

		require.Len(t, entries, 2)
		assert.Equal(t, "1", entries[0].Value)
		assert.Equal(t, "", entries[1].Value)
		assert.Equal(t, storage.TTLKeyMissing, entries[1].TTL)
	})

	t.Run("per-key ttl failure does not drop the entry", func(t *testing.T) {
		one := "1"
		store := new(mockStore)
		store.On("Ping", mock.Anything).Return(nil)
		store.On("Keys", mock.Anything, "*").Return([]string{"a"}, nil)
		store.On("MGet", mock.Anything, []string{"a"}).Return([]*string{&one}, nil)
		store.On("TTL", mock.Anything, "a").Return(int64(0), errors.New("ttl failed"))

		entries, _ := dashboard.NewLoader(store, nil).Load(ctx)

		require.Len(t, entries, 1)
		assert.Equal(t, storage.TTLKeyMissing, entries[0].TTL)
	})
}

func TestFormatTTL(t *testing.T) {
	assert.Equal(t, "120 sec", dashboard.FormatTTL(120))
	assert.Equal(t, "no TTL", dashboard.FormatTTL(storage.TTLNoExpiry))
	assert.Equal(t, "does not exist", dashboard.FormatTTL(storage.TTLKeyMissing))
	assert.Equal(t, "0 sec", dashboard.FormatTTL(0))
}

func TestFormatTiming(t *testing.T) {
	assert.Equal(t, "n/a", dashboard.FormatTiming(nil))

	ms := 12.3456
	assert.Equal(t, "12.35 ms", dashboard.FormatTiming(&ms))
}
