package tools

import (
	"fmt"
	"sync"
	"time"
)

// RateLimiter implements a sliding window limit on tool executions,
// tracked per command name.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string][]time.Time
	maxPerHr int
	window   time.Duration
}

// NewRateLimiter creates a limiter with the given max executions per
// hour. Pass 0 to disable.
func NewRateLimiter(maxPerHour int) *RateLimiter {
	if maxPerHour <= 0 {
		return nil
	}
	return &RateLimiter{
		windows:  make(map[string][]time.Time),
		maxPerHr: maxPerHour,
		window:   time.Hour,
	}
}

// Allow checks whether another execution is allowed for the key.
func (rl *RateLimiter) Allow(key string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	entries := rl.windows[key]
	start := 0
	for start < len(entries) && entries[start].Before(cutoff) {
		start++
	}
	entries = entries[start:]

	if len(entries) >= rl.maxPerHr {
		return fmt.Errorf("rate limit exceeded: %d executions/hour for %s", rl.maxPerHr, key)
	}

	rl.windows[key] = append(entries, now)
	return nil
}
