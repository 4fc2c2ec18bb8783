package formapi

import "time"

// Config holds the API limits.
type Config struct {
	DraftRate      float64       `env:"FORMAPI_DRAFT_RATE" envDefault:"5"` // draft writes per second per form
	DraftBurst     int           `env:"FORMAPI_DRAFT_BURST" envDefault:"10"`
	LimiterIdleTTL time.Duration `env:"FORMAPI_LIMITER_IDLE_TTL" envDefault:"15m"`
	MaxBodyBytes   int64         `env:"FORMAPI_MAX_BODY_BYTES" envDefault:"65536"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		DraftRate:      5,
		DraftBurst:     10,
		LimiterIdleTTL: 15 * time.Minute,
		MaxBodyBytes:   64 << 10,
	}
}
