// Package ratelimit throttles actions per key with token buckets.
package ratelimit

import (
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched bucket is kept before it is dropped.
const idleTTL = 30 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewOTPLimiter builds the limiter guarding code requests per phone number.
func NewOTPLimiter(cfg *config.Config) service.RateLimiter {
	return NewKeyedLimiter(rate.Limit(cfg.Auth.OTPRatePerMinute/60), cfg.Auth.OTPBurst)
}

// NewKeyedLimiter returns a limiter giving each key its own bucket of size
// burst refilled at limit events per second.
func NewKeyedLimiter(limit rate.Limit, burst int) service.RateLimiter {
	return &keyedLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

func (l *keyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// evictIdle must be called with mu held.
func (l *keyedLimiter) evictIdle(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(l.buckets, key)
		}
	}
}
