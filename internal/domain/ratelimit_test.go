package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lives here instead of testutil to avoid an import cycle.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(3, time.Minute, clock)

	assert.True(t, limiter.Allow("add"))
	assert.True(t, limiter.Allow("add"))
	assert.True(t, limiter.Allow("add"))
	assert.False(t, limiter.Allow("add"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(2, time.Minute, clock)

	assert.True(t, limiter.Allow("add"))
	clock.now = clock.now.Add(30 * time.Second)
	assert.True(t, limiter.Allow("add"))
	assert.False(t, limiter.Allow("add"))

	// The first attempt ages out; one slot frees up.
	clock.now = clock.now.Add(31 * time.Second)
	assert.True(t, limiter.Allow("add"))
	assert.False(t, limiter.Allow("add"))
}

func TestRateLimiter_RejectedAttemptNotRecorded(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(1, time.Minute, clock)

	assert.True(t, limiter.Allow("add"))

	// Hammering while limited must not extend the lockout.
	for i := 0; i < 10; i++ {
		assert.False(t, limiter.Allow("add"))
	}

	clock.now = clock.now.Add(time.Minute)
	assert.True(t, limiter.Allow("add"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(1, time.Minute, clock)

	assert.True(t, limiter.Allow("add"))
	assert.False(t, limiter.Allow("add"))
	assert.True(t, limiter.Allow("delete"))
}

func TestRateLimiter_Reset(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(1, time.Minute, clock)

	assert.True(t, limiter.Allow("add"))
	assert.False(t, limiter.Allow("add"))

	limiter.Reset("add")
	assert.True(t, limiter.Allow("add"))
}
