// Package kvstore keeps short-lived auth state: pending OTP challenges and
// revoked refresh tokens. It runs in process memory or on Redis.
package kvstore

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// memoryStore implements OTPStore and TokenRevocationStore in process memory.
// Expired entries are purged lazily on access and by Sweep.
type memoryStore struct {
	mu         sync.Mutex
	challenges map[string]entity.OTPChallenge
	revoked    map[string]time.Time
	now        func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		challenges: make(map[string]entity.OTPChallenge),
		revoked:    make(map[string]time.Time),
		now:        time.Now,
	}
}

func (s *memoryStore) Save(_ context.Context, challenge *entity.OTPChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[challenge.Handle] = *challenge

	return nil
}

func (s *memoryStore) Find(_ context.Context, handle string) (*entity.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.liveChallenge(handle)
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}

	return &challenge, nil
}

func (s *memoryStore) IncrementAttempts(_ context.Context, handle string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.liveChallenge(handle)
	if !ok {
		return 0, repository.ErrChallengeNotFound
	}
	challenge.Attempts++
	s.challenges[handle] = challenge

	return challenge.Attempts, nil
}

func (s *memoryStore) Take(_ context.Context, handle string) (*entity.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.liveChallenge(handle)
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	delete(s.challenges, handle)

	return &challenge, nil
}

func (s *memoryStore) Delete(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.challenges, handle)

	return nil
}

func (s *memoryStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until.After(s.now()) {
		s.revoked[tokenID] = until
	}

	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, tokenID)

		return false, nil
	}

	return true, nil
}

// Sweep drops every expired entry and returns how many were removed.
func (s *memoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for handle, challenge := range s.challenges {
		if challenge.Expired(now) {
			delete(s.challenges, handle)
			removed++
		}
	}
	for tokenID, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, tokenID)
			removed++
		}
	}

	return removed
}

// liveChallenge must be called with mu held.
func (s *memoryStore) liveChallenge(handle string) (entity.OTPChallenge, bool) {
	challenge, ok := s.challenges[handle]
	if !ok {
		return entity.OTPChallenge{}, false
	}
	if challenge.Expired(s.now()) {
		delete(s.challenges, handle)

		return entity.OTPChallenge{}, false
	}

	return challenge, true
}
