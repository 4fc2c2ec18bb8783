// Package ratelimiter controls how often a function runs when it is called in
// rapid succession, typically from input or scroll events.
//
// Two wrappers are provided:
//
//   - Debounce collapses a burst of calls into one trailing call. Each call
//     schedules the function to run after the wait period and cancels the
//     call scheduled before it, so the function runs once, wait after the
//     last call of the burst, with the arguments of that last call. There is
//     no leading call and no maximum wait: calls spaced closer than wait
//     postpone the function indefinitely.
//
//   - Throttle runs the function immediately on the first call and then
//     ignores calls for the limit period. Ignored calls are dropped, not
//     queued, and their arguments are discarded.
//
// Arguments are forwarded as a single value of the type parameter. Use a
// struct when the wrapped function needs several values, and a method value
// when it needs its receiver:
//
//	search := ratelimiter.Debounce(idx.Search, 300*time.Millisecond)
//	search.Call("pathfinder")
//
// Every wrapper owns its own state; there is no shared timer.
//
// # Scheduling
//
// Timing goes through a clockwork.Clock. Production code uses the real clock;
// tests inject clockwork.NewFakeClock with WithClock and drive time with
// Advance:
//
//	clock := clockwork.NewFakeClock()
//	d := ratelimiter.Debounce(save, time.Second, ratelimiter.WithClock(clock))
//	d.Call(draft)
//	clock.Advance(time.Second) // save(draft) runs on its own goroutine
//
// Debounced calls run on the timer goroutine. Throttled calls run inline, on
// the caller's goroutine. Wrapped functions are always invoked without any
// internal lock held, so they may call their own wrapper again.
//
// # Errors
//
// Nothing in this package returns an error. Constructors panic when given a
// nil function; non-positive durations are treated as zero.
package ratelimiter
