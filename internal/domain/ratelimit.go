package domain

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window limiter keyed by action name.
// At most maxAttempts attempts are allowed per rolling window; older
// attempts are pruned lazily on each check. The limiter is an explicit
// collaborator so tests can inject a fake clock and reset state.
type RateLimiter struct {
	clock       Clock
	attempts    map[string][]time.Time
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a limiter allowing maxAttempts per window.
func NewRateLimiter(maxAttempts int, window time.Duration, clock Clock) *RateLimiter {
	return &RateLimiter{
		clock:       clock,
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records an attempt for key and reports whether it is within
// the limit. A rejected attempt is not recorded.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	recent := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if now.Sub(t) < l.window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.maxAttempts {
		l.attempts[key] = recent
		return false
	}

	l.attempts[key] = append(recent, now)
	return true
}

// Reset clears the recorded attempts for key.
func (l *RateLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}
