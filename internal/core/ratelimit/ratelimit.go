// Package ratelimit implements a fixed-window request limiter keyed by
// caller identity. Buckets live in process memory; restarting the service
// clears all counters
package ratelimit

import (
	"sync"
	"time"
)

// Defaults applied when a caller passes a non-positive limit or window
const (
	DefaultLimit  = 20
	DefaultWindow = 24 * time.Hour
)

// Decision is the outcome of a single Check call
type Decision struct {
	// Allowed reports whether the request may proceed
	Allowed bool
	// Remaining is the number of requests left in the current window
	// zero when the request was rejected
	Remaining int
	// ResetAt is when the current window expires and counting restarts
	ResetAt time.Time
}

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter tracks request counts per key over fixed windows.
// The zero value is not usable; construct with New
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// Option mutates a Limiter during construction
type Option func(*Limiter)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New constructs an empty Limiter
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Check records one request attempt for key and reports the decision.
// A key seen for the first time, or whose window has lapsed, starts a fresh
// window with count one. Below the cap the count increments; at the cap the
// request is rejected and the count stays put so the window is not extended
func (l *Limiter) Check(key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{count: 1, resetAt: now.Add(window)}
		l.buckets[key] = b
		return Decision{Allowed: true, Remaining: limit - 1, ResetAt: b.resetAt}
	}

	if b.count >= limit {
		return Decision{Allowed: false, Remaining: 0, ResetAt: b.resetAt}
	}

	b.count++
	return Decision{Allowed: true, Remaining: limit - b.count, ResetAt: b.resetAt}
}

// Reset drops the bucket for key so the next Check starts a fresh window
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Len reports how many keys currently hold buckets, expired or not
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Sweep removes buckets whose window has already expired.
// Long-lived processes can call this periodically to bound memory
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for k, b := range l.buckets {
		if !now.Before(b.resetAt) {
			delete(l.buckets, k)
			removed++
		}
	}
	return removed
}
