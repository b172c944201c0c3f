package telegram

import (
	"sync"
	"time"
)

// RateLimiter implements a per-user token bucket, refilled at a steady
// per-minute rate.
type RateLimiter struct {
	mu     sync.Mutex
	users  map[int64]*bucket
	refill time.Duration // time to earn one token
	burst  int
}

type bucket struct {
	tokens   int
	lastTime time.Time
}

// NewRateLimiter creates a limiter allowing perMinute commands per minute
// with the given burst capacity.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		users:  make(map[int64]*bucket),
		refill: time.Minute / time.Duration(perMinute),
		burst:  burst,
	}
	// Drop buckets for users who have gone quiet.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.cleanup()
		}
	}()
	return rl
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := time.Now().Add(-10 * time.Minute)
	for id, b := range rl.users {
		if b.lastTime.Before(cutoff) {
			delete(rl.users, id)
		}
	}
}

// Allow reports whether the user may run another command right now.
func (rl *RateLimiter) Allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.users[userID]
	now := time.Now()

	if !exists {
		rl.users[userID] = &bucket{tokens: rl.burst - 1, lastTime: now}
		return true
	}

	earned := int(now.Sub(b.lastTime) / rl.refill)
	if earned > 0 {
		b.tokens += earned
		if b.tokens > rl.burst {
			b.tokens = rl.burst
		}
		b.lastTime = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}
