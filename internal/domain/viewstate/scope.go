package viewstate

import (
	"sync"

	"storefront/internal/domain/repository"
)

// Scope owns the subscriptions opened by one screen. Close releases each of
// them exactly once, newest first.
type Scope struct {
	mu       sync.Mutex
	releases []repository.Unsubscribe
	closed   bool
}

// NewScope returns an open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Acquire registers a subscription. If the scope is already closed the
// subscription is released immediately.
func (s *Scope) Acquire(unsub repository.Unsubscribe) {
	if unsub == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		unsub()

		return
	}
	s.releases = append(s.releases, unsub)
	s.mu.Unlock()
}

// Len reports how many subscriptions are held.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.releases)
}

// Close releases every held subscription. Later calls do nothing.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// Once wraps release so that only its first call has an effect.
func Once(release func()) repository.Unsubscribe {
	var once sync.Once

	return func() {
		once.Do(release)
	}
}
