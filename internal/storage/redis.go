package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a go-redis client.
type RedisStore struct {
	client    *redis.Client
	scanCount int64
}

var _ Store = (*RedisStore)(nil)

// Connect establishes a connection to the store using the provided
// configuration. It retries up to RetryAttempts times with
// RetryInterval between attempts, bounded by ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*RedisStore, error) {
	connURL, err := cfg.URL()
	if err != nil {
		return nil, err
	}

	opt, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return &RedisStore{client: client, scanCount: cfg.ScanCount}, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrNotReady
}

// NewRedisStore wraps an existing client. Used when the caller owns
// the connection lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, scanCount: 1000}
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Keys walks the keyspace with SCAN until the cursor returns to zero.
// Incremental scanning avoids blocking the store the way KEYS does on
// large keyspaces.
func (s *RedisStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, s.scanCount).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

func (s *RedisStore) MGet(ctx context.Context, keys []string) ([]*string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	raw, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make([]*string, len(keys))
	for i, v := range raw {
		if str, ok := v.(string); ok {
			values[i] = &str
		}
	}
	return values, nil
}

func (s *RedisStore) TTL(ctx context.Context, key string) (int64, error) {
	d, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// go-redis passes the protocol's negative replies through as raw
	// durations.
	switch d {
	case -1:
		return TTLNoExpiry, nil
	case -2:
		return TTLKeyMissing, nil
	}
	return int64(d / time.Second), nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
