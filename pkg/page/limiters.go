package page

import (
	"time"

	"github.com/dmitrymomot/clubkit/pkg/ratelimiter"
)

// Debounce returns a debouncer driven by the page clock.
func Debounce[T any](p *Page, fn func(T), wait time.Duration) (*ratelimiter.Debouncer[T], error) {
	if !p.cfg.RateLimiters {
		return nil, ErrRateLimitersDisabled
	}
	return ratelimiter.Debounce(fn, wait, ratelimiter.WithClock(p.clock)), nil
}

// Throttle returns a throttler driven by the page clock.
func Throttle[T any](p *Page, fn func(T), limit time.Duration) (*ratelimiter.Throttler[T], error) {
	if !p.cfg.RateLimiters {
		return nil, ErrRateLimitersDisabled
	}
	return ratelimiter.Throttle(fn, limit, ratelimiter.WithClock(p.clock)), nil
}
