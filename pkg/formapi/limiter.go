package formapi

import (
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// writeLimiter keeps one token bucket per form id. Idle buckets are dropped
// on a later access once they have been unused for idleTTL.
type writeLimiter struct {
	clock   clockwork.Clock
	rps     rate.Limit
	burst   int
	idleTTL time.Duration

	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newWriteLimiter(clock clockwork.Clock, rps float64, burst int, idleTTL time.Duration) *writeLimiter {
	if burst < 1 {
		burst = 1
	}
	return &writeLimiter{
		clock:     clock,
		rps:       rate.Limit(rps),
		burst:     burst,
		idleTTL:   idleTTL,
		entries:   make(map[string]*limiterEntry),
		lastSweep: clock.Now(),
	}
}

// allow reports whether a write for key may proceed now. When it may not,
// the returned duration is a suggested wait.
func (l *writeLimiter) allow(key string) (bool, time.Duration) {
	if l.rps <= 0 {
		return true, 0
	}
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepLocked(now)

	ent, ok := l.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = ent
	}
	ent.lastSeen = now

	if ent.lim.AllowN(now, 1) {
		return true, 0
	}
	r := ent.lim.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, wait
}

func (l *writeLimiter) sweepLocked(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	cutoff := now.Add(-l.idleTTL)
	for k, ent := range l.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(l.entries, k)
		}
	}
	l.lastSweep = now
}

func (l *writeLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
