package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/slyouthjobs/api/internal/model"
)

// RateLimitConfig tunes the in-memory token bucket limiter. Zero values fall
// back to defaults suited to a small public API.
type RateLimitConfig struct {
	Rate    int           // tokens refilled per window (default 100)
	Window  time.Duration // refill window (default 1 minute)
	Burst   int           // extra tokens above the steady rate (default 20)
	Cleanup time.Duration // idle-bucket sweep interval (default 5 minutes)
}

// RateLimiter rate-limits callers with a token bucket per key. Keys are user
// IDs for authenticated requests and remote addresses otherwise.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	rate     int
	window   time.Duration
	burst    int
	cleanup  time.Duration
	stopChan chan struct{}
}

type tokenBucket struct {
	tokens    int
	lastTopUp time.Time
}

// NewRateLimiter builds a limiter and starts its idle-bucket sweeper.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Rate == 0 {
		cfg.Rate = 100
	}
	if cfg.Window == 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		buckets:  make(map[string]*tokenBucket),
		rate:     cfg.Rate,
		window:   cfg.Window,
		burst:    cfg.Burst,
		cleanup:  cfg.Cleanup,
		stopChan: make(chan struct{}),
	}

	go rl.sweepLoop()

	return rl
}

// Stop terminates the sweeper goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropIdleBuckets()
		case <-rl.stopChan:
			return
		}
	}
}

// dropIdleBuckets discards buckets untouched for two full windows; they would
// refill completely on next use anyway.
func (rl *RateLimiter) dropIdleBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window * 2)
	for key, b := range rl.buckets {
		if b.lastTopUp.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Allow consumes one token for key. It reports whether the request may
// proceed, how many tokens remain, and when the bucket next refills.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	capacity := rl.rate + rl.burst

	b, exists := rl.buckets[key]
	if !exists {
		b = &tokenBucket{
			tokens:    capacity - 1, // this request consumes one
			lastTopUp: now,
		}
		rl.buckets[key] = b
		return true, b.tokens, now.Add(rl.window)
	}

	elapsed := now.Sub(b.lastTopUp)
	if elapsed >= rl.window {
		b.tokens = capacity
		b.lastTopUp = now
	} else {
		refill := int(float64(rl.rate) * (float64(elapsed) / float64(rl.window)))
		b.tokens += refill
		if b.tokens > capacity {
			b.tokens = capacity
		}
		if refill > 0 {
			b.lastTopUp = now
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return true, b.tokens, b.lastTopUp.Add(rl.window)
	}

	return false, 0, b.lastTopUp.Add(rl.window)
}

// RateLimit enforces the limiter and sets the X-RateLimit-* headers. Rejected
// requests get a 429 problem response with Retry-After.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := GetUserID(r.Context())
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, remaining, resetTime := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(resetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
