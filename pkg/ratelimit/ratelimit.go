// Package ratelimit provides fixed-window admission control keyed by
// client identity. It is process-local, in-memory state: counters reset
// on restart and are not shared across instances.
package ratelimit

import (
	"sync"
	"time"
)

// Result is one admission decision. RemainingWindow is how long the
// current window still runs; on rejection it doubles as the retry-after
// guidance.
type Result struct {
	Limited         bool
	RemainingWindow time.Duration
}

type entry struct {
	count       int
	windowStart time.Time
}

// Limiter counts calls per key in fixed windows. The call that breaches
// the limit is itself rejected. Safe for concurrent use; requests for
// the same key never undercount under concurrent bursts, keys never
// contend with each other beyond the shared mutex.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*entry

	checks    int
	lastSweep time.Time

	now func() time.Time // overridable for tests
}

const (
	DefaultLimit  = 10
	DefaultWindow = time.Minute

	sweepEvery = 256
)

// New builds a limiter allowing limit calls per key per window.
// Non-positive arguments fall back to the defaults (10 per minute).
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check records one call for key and reports whether it is admitted.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{windowStart: now}
		l.entries[key] = e
	}

	if now.After(e.windowStart.Add(l.window)) {
		e.count = 0
		e.windowStart = now
	}

	e.count++
	l.maybeSweep(now)

	return Result{
		Limited:         e.count > l.limit,
		RemainingWindow: e.windowStart.Add(l.window).Sub(now),
	}
}

// maybeSweep lazily drops keys whose window expired more than one full
// window ago. Runs at most every sweepEvery checks and once per window,
// keeping the map proportional to the active client set without a
// background goroutine. Caller holds the mutex.
func (l *Limiter) maybeSweep(now time.Time) {
	l.checks++
	if l.checks%sweepEvery != 0 || now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now

	cutoff := now.Add(-2 * l.window)
	for key, e := range l.entries {
		if e.windowStart.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}
