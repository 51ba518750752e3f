package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrChallengeNotFound is returned when an OTP challenge does not exist or has been purged.
var ErrChallengeNotFound = errors.New("otp challenge not found")

// OTPStore keeps pending phone verifications until they are confirmed or expire.
type OTPStore interface {
	// Save stores a challenge. The store may purge it once ExpiresAt has passed.
	Save(ctx context.Context, challenge *entity.OTPChallenge) error

	// Find retrieves a challenge by its handle.
	Find(ctx context.Context, handle string) (*entity.OTPChallenge, error)

	// IncrementAttempts records a failed confirmation and returns the new count.
	IncrementAttempts(ctx context.Context, handle string) (int, error)

	// Take removes a challenge and returns it in one step. Of several callers
	// racing on the same handle only one gets the challenge, the rest get
	// ErrChallengeNotFound.
	Take(ctx context.Context, handle string) (*entity.OTPChallenge, error)

	// Delete removes a challenge. Deleting an unknown handle is not an error.
	Delete(ctx context.Context, handle string) error
}

// TokenRevocationStore remembers refresh tokens ended by sign-out.
type TokenRevocationStore interface {
	// Revoke marks tokenID revoked until the given instant, after which the token expires on its own.
	Revoke(ctx context.Context, tokenID string, until time.Time) error

	// IsRevoked reports whether tokenID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
