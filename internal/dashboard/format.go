package dashboard

import (
	"fmt"

	"github.com/redisboard/redisboard/internal/storage"
)

// FormatTTL renders a TTL value for display.
func FormatTTL(ttl int64) string {
	switch ttl {
	case storage.TTLNoExpiry:
		return "no TTL"
	case storage.TTLKeyMissing:
		return "does not exist"
	default:
		return fmt.Sprintf("%d sec", ttl)
	}
}

// FormatTiming renders a timing measurement in milliseconds, or
// "n/a" when the step it measures failed.
func FormatTiming(ms *float64) string {
	if ms == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f ms", *ms)
}
