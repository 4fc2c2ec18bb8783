package redis

import "time"

// Config describes how to reach the Redis instance that holds form drafts.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"` // redis://:password@host:6379/0; empty disables Redis
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
	DraftTTL       time.Duration `env:"REDIS_DRAFT_TTL" envDefault:"168h"` // lifetime of an autosaved draft
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"clubkit:"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
