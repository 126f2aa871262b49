// Package dashboard assembles the key/value listing shown on the
// admin page: a full key enumeration, a bulk value fetch, per-key
// TTLs, and the operator-facing timing measurements around them.
package dashboard

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/redisboard/redisboard/internal/session"
	"github.com/redisboard/redisboard/internal/storage"
)

// Entry is one displayed key with its value and remaining TTL in
// seconds (storage.TTLNoExpiry / storage.TTLKeyMissing for the
// special cases).
type Entry struct {
	Key   string
	Value string
	TTL   int64
}

// Timings carries wall-clock measurements for operator visibility.
// A nil field means the corresponding step failed.
type Timings struct {
	ConnectMillis *float64
	FetchMillis   *float64
}

// Loader reads all non-session keys from the store.
type Loader struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards diagnostics.
func NewLoader(store storage.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{store: store, logger: logger}
}

// Load returns the current dashboard entries in enumeration order.
// Every failure degrades to a smaller result instead of an error: an
// unreachable store yields no entries and no timings, a failed value
// fetch yields no entries but keeps the timings. The page always has
// something to render.
func (l *Loader) Load(ctx context.Context) ([]Entry, Timings) {
	var timings Timings

	startConnect := time.Now()
	if err := l.store.Ping(ctx); err != nil {
		l.logger.ErrorContext(ctx, "store unreachable", slog.Any("error", err))
		return []Entry{}, timings
	}
	timings.ConnectMillis = millisSince(startConnect)

	startFetch := time.Now()
	keys, err := l.store.Keys(ctx, "*")
	if err != nil {
		l.logger.ErrorContext(ctx, "key enumeration failed", slog.Any("error", err))
		return []Entry{}, timings
	}

	filtered := keys[:0]
	for _, key := range keys {
		if !session.IsSessionKey(key) {
			filtered = append(filtered, key)
		}
	}

	entries := l.fetch(ctx, filtered)
	timings.FetchMillis = millisSince(startFetch)

	return entries, timings
}

// fetch runs the value and TTL batches concurrently; the two reads
// are independent.
func (l *Loader) fetch(ctx context.Context, keys []string) []Entry {
	if len(keys) == 0 {
		return []Entry{}
	}

	var (
		wg     sync.WaitGroup
		values []*string
		ttls   = make([]int64, len(keys))
		errVal error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		values, errVal = l.store.MGet(ctx, keys)
	}()
	go func() {
		defer wg.Done()
		for i, key := range keys {
			ttl, err := l.store.TTL(ctx, key)
			if err != nil {
				l.logger.ErrorContext(ctx, "ttl fetch failed",
					slog.String("key", key), slog.Any("error", err))
				ttl = storage.TTLKeyMissing
			}
			ttls[i] = ttl
		}
	}()
	wg.Wait()

	if errVal != nil {
		l.logger.ErrorContext(ctx, "bulk value fetch failed", slog.Any("error", errVal))
		return []Entry{}
	}

	entries := make([]Entry, len(keys))
	for i, key := range keys {
		value := ""
		if i < len(values) && values[i] != nil {
			value = *values[i]
		}
		entries[i] = Entry{Key: key, Value: value, TTL: ttls[i]}
	}
	return entries
}

func millisSince(start time.Time) *float64 {
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	return &ms
}
