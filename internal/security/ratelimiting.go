package security

import (
	"sync"
	"time"
)

// RateLimiter implements a per-identifier token bucket. Used to throttle
// login attempts by client IP.
type RateLimiter struct {
	buckets map[string]*bucketState
	mu      sync.Mutex

	maxTokens  int           // bucket capacity
	refillRate time.Duration // time between token refills

	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
}

// bucketState tracks the token bucket for a single identifier.
type bucketState struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing maxTokens requests with one
// token refilled every refillRate.
//
// Example:
//
//	// 5 login attempts per minute
//	limiter := NewRateLimiter(5, 12*time.Second)
func NewRateLimiter(maxTokens int, refillRate time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:     make(map[string]*bucketState),
		maxTokens:   maxTokens,
		refillRate:  refillRate,
		stopCleanup: make(chan struct{}),
	}

	// Background cleanup keeps the bucket map from growing unboundedly.
	rl.cleanupTicker = time.NewTicker(10 * time.Minute)
	go rl.cleanup()

	return rl
}

// Allow reports whether a request from identifier may proceed, consuming a
// token when it does.
func (rl *RateLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.buckets[identifier]
	if !exists {
		rl.buckets[identifier] = &bucketState{
			tokens:     rl.maxTokens - 1,
			lastRefill: time.Now(),
		}
		return true
	}

	elapsed := time.Since(bucket.lastRefill)
	if refill := int(elapsed / rl.refillRate); refill > 0 {
		bucket.tokens += refill
		if bucket.tokens > rl.maxTokens {
			bucket.tokens = rl.maxTokens
		}
		bucket.lastRefill = time.Now()
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true
	}
	return false
}

// Reset clears the state for an identifier.
func (rl *RateLimiter) Reset(identifier string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.buckets, identifier)
}

func (rl *RateLimiter) cleanup() {
	for {
		select {
		case <-rl.cleanupTicker.C:
			rl.mu.Lock()
			now := time.Now()
			for id, bucket := range rl.buckets {
				if now.Sub(bucket.lastRefill) > time.Hour {
					delete(rl.buckets, id)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCleanup:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.cleanupTicker.Stop()
	close(rl.stopCleanup)
}
