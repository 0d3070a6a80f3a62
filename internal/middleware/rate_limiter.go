package middleware

import (
	"sync"
	"time"
)

// RateLimiter caps how many UI actions a single chat may trigger per window.
type RateLimiter struct {
	limits map[int64]*userLimit
	mu     sync.RWMutex

	maxRequests int
	window      time.Duration
}

type userLimit struct {
	requests  int
	resetTime time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limits:      make(map[int64]*userLimit),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// Allow reports whether the chat may perform another action in the current
// window and records it.
func (rl *RateLimiter) Allow(chatID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	limit, exists := rl.limits[chatID]
	if !exists || now.After(limit.resetTime) {
		rl.limits[chatID] = &userLimit{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if limit.requests >= rl.maxRequests {
		return false
	}

	limit.requests++
	return true
}

// Remaining returns how many actions the chat has left in the current window.
func (rl *RateLimiter) Remaining(chatID int64) int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	limit, exists := rl.limits[chatID]
	if !exists || time.Now().After(limit.resetTime) {
		return rl.maxRequests
	}

	remaining := rl.maxRequests - limit.requests
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup removes expired entries
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for chatID, limit := range rl.limits {
			if now.After(limit.resetTime) {
				delete(rl.limits, chatID)
			}
		}
		rl.mu.Unlock()
	}
}

// Reset clears all rate limits (useful for testing)
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.limits = make(map[int64]*userLimit)
}
