package ratelimiter

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer delays calls to a function until wait has passed without another call.
type Debouncer[T any] struct {
	fn    func(T)
	wait  time.Duration
	clock clockwork.Clock

	mu      sync.Mutex
	timer   clockwork.Timer
	arg     T
	pending bool
	// gen identifies the current timer; callbacks of replaced timers that
	// could not be stopped in time see a different value and do nothing.
	gen uint64
}

// Debounce wraps fn. See the package documentation for the exact semantics.
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	if fn == nil {
		panic("ratelimiter: Debounce called with nil function")
	}
	o := newOptions(opts)
	return &Debouncer[T]{
		fn:    fn,
		wait:  clampDuration(wait),
		clock: o.clock,
	}
}

// DebounceFunc is Debounce for callers that only need the wrapped function.
func DebounceFunc[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	return Debounce(fn, wait, opts...).Call
}

// Call records arg and (re)starts the wait period. Any invocation scheduled by
// an earlier call is cancelled.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.arg = arg
	d.pending = true
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Cancel drops the pending invocation. It reports whether one was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return false
	}
	d.resetLocked()
	return true
}

// Flush runs the pending invocation immediately on the caller's goroutine.
// It reports whether one was pending.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	arg := d.arg
	d.resetLocked()
	d.mu.Unlock()

	d.fn(arg)
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.timer = nil
	d.pending = false
	var zero T
	d.arg = zero
	d.mu.Unlock()

	d.fn(arg)
}

// resetLocked returns to idle. The caller must hold d.mu.
func (d *Debouncer[T]) resetLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	var zero T
	d.arg = zero
}
