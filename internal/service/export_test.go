package service

import "time"

// SetClock replaces the limiter's time source.
func (rl *RateLimiter) SetClock(now func() time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.now = now
}

// Sweep runs one idle-bucket sweep immediately.
func (rl *RateLimiter) Sweep() { rl.sweep() }

// Buckets returns the number of tracked keys.
func (rl *RateLimiter) Buckets() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}
