package ratelimiter

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttler runs a function at most once per limit period.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	clock clockwork.Clock

	mu sync.Mutex
	// until is the end of the current cooldown; zero when idle.
	until time.Time
}

// Throttle wraps fn. See the package documentation for the exact semantics.
func Throttle[T any](fn func(T), limit time.Duration, opts ...Option) *Throttler[T] {
	if fn == nil {
		panic("ratelimiter: Throttle called with nil function")
	}
	o := newOptions(opts)
	return &Throttler[T]{
		fn:    fn,
		limit: clampDuration(limit),
		clock: o.clock,
	}
}

// ThrottleFunc is Throttle for callers that only need the wrapped function.
func ThrottleFunc[T any](fn func(T), limit time.Duration, opts ...Option) func(T) {
	t := Throttle(fn, limit, opts...)
	return func(arg T) { t.Call(arg) }
}

// Call invokes the function with arg unless a cooldown is active, in which
// case the call is dropped. It reports whether the function ran.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	now := t.clock.Now()
	if now.Before(t.until) {
		t.mu.Unlock()
		return false
	}
	t.until = now.Add(t.limit)
	t.mu.Unlock()

	t.fn(arg)
	return true
}

// Cooling reports whether calls are currently being dropped.
func (t *Throttler[T]) Cooling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clock.Now().Before(t.until)
}

// Reset ends the current cooldown so the next call runs immediately.
func (t *Throttler[T]) Reset() {
	t.mu.Lock()
	t.until = time.Time{}
	t.mu.Unlock()
}
