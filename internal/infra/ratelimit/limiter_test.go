package ratelimit

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewKeyedLimiter(rate.Every(time.Minute), 2).(*keyedLimiter)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("+911111111111"))
	assert.True(t, l.Allow("+911111111111"))
	assert.False(t, l.Allow("+911111111111"))

	// Keys do not share buckets.
	assert.True(t, l.Allow("+912222222222"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("+911111111111"))
}

func TestKeyedLimiter_EvictsIdleBuckets(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewKeyedLimiter(rate.Every(time.Minute), 1).(*keyedLimiter)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(idleTTL + time.Second)
	l.Allow("b")

	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "b")
}

func TestNewOTPLimiter(t *testing.T) {
	l := NewOTPLimiter(&config.Config{Auth: &config.AuthConfig{OTPRatePerMinute: 1, OTPBurst: 3}}).(*keyedLimiter)

	assert.Equal(t, 3, l.burst)
	assert.InDelta(t, 1.0/60, float64(l.limit), 1e-9)
}
