package utils

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter tracks a token bucket per client IP so one aggressive visitor
// cannot exhaust the backend for everyone else.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

// NewRateLimiter returns a limiter that refills requestsPerMinute tokens per
// minute for each client, allowing bursts of up to burst requests. Zero or
// negative arguments fall back to 60 requests per minute and a burst of 1.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = limiter
	}

	return limiter
}

// Allow reports whether the client identified by ip may issue another
// backend-bound request right now.
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getLimiter(ip).Allow()
}
