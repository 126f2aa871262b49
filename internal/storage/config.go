package storage

import (
	"fmt"
	"net/url"
	"time"
)

// Config describes the store connection. ConnectionURL takes
// precedence; otherwise the URL is assembled from host, port and
// password parts.
type Config struct {
	ConnectionURL string `env:"REDIS_URL"`      // ConnectionURL is the full store URL, e.g. "redis://:password@localhost:6379/0".
	Host          string `env:"REDIS_HOST"`     // Host of the store, used when ConnectionURL is empty.
	Port          int    `env:"REDIS_PORT"`     // Port of the store, used when ConnectionURL is empty.
	Password      string `env:"REDIS_PASSWORD"` // Password of the store, used when ConnectionURL is empty.

	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"` // RetryInterval is the delay between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	ScanCount      int64         `env:"REDIS_SCAN_COUNT" envDefault:"1000"` // ScanCount is the per-iteration hint for key enumeration.
}

// URL resolves the effective connection URL. It returns
// ErrMissingConfig when neither the URL nor the host/port pair is
// configured.
func (c Config) URL() (string, error) {
	if c.ConnectionURL != "" {
		return c.ConnectionURL, nil
	}
	if c.Host == "" || c.Port == 0 {
		return "", ErrMissingConfig
	}
	return fmt.Sprintf("redis://default:%s@%s:%d",
		url.QueryEscape(c.Password), c.Host, c.Port), nil
}
