package service

// RateLimiter throttles actions per key, such as code requests per phone number.
type RateLimiter interface {
	// Allow reports whether one more action for key may happen now.
	Allow(key string) bool
}
