package ratelimiter

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Option configures a Debouncer or Throttler.
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock sets the clock used for scheduling. Nil clocks are ignored.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
