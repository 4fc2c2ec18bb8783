package page

import (
	"time"

	"github.com/dmitrymomot/clubkit/pkg/mask"
)

// DefaultSearchDelay is the quiet period before a live search runs.
const DefaultSearchDelay = 300 * time.Millisecond

// Config selects which behaviours Attach binds.
type Config struct {
	// Masks limits masking to these kinds. Empty binds every kind.
	Masks []mask.Kind `env:"PAGE_MASKS" envSeparator:","`
	// RateLimiters enables the debounced search and the Debounce/Throttle
	// factories. Disabled, searches run on every edit.
	RateLimiters bool `env:"PAGE_RATE_LIMITERS" envDefault:"true"`
	// SearchDelay is the debounce wait for data-search inputs. Zero means
	// DefaultSearchDelay.
	SearchDelay time.Duration `env:"PAGE_SEARCH_DELAY" envDefault:"300ms"`
	Autosave    bool          `env:"PAGE_AUTOSAVE" envDefault:"true"`
	Language    string        `env:"PAGE_LANGUAGE" envDefault:"pt-BR"`
}

// DefaultConfig enables every behaviour with the stock timings.
func DefaultConfig() Config {
	return Config{
		RateLimiters: true,
		SearchDelay:  DefaultSearchDelay,
		Autosave:     true,
		Language:     "pt-BR",
	}
}

func (c Config) searchDelay() time.Duration {
	if c.SearchDelay <= 0 {
		return DefaultSearchDelay
	}
	return c.SearchDelay
}

func (c Config) maskEnabled(kind mask.Kind) bool {
	if len(c.Masks) == 0 {
		return true
	}
	for _, k := range c.Masks {
		if k == kind {
			return true
		}
	}
	return false
}
