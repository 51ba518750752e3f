package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// IdentityVerifier verifies ID tokens minted by the managed auth service after
// the client completed phone verification on its own.
type IdentityVerifier interface {
	// VerifyIDToken checks the token signature and audience and returns the signed-in identity.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)
}

// IdentityProvider maps a phone number verified by this backend onto the same
// account the managed auth service keeps for it, so both sign-in paths agree
// on the user ID.
type IdentityProvider interface {
	// IdentityForPhone returns the account for phone, creating it on first sign-in.
	IdentityForPhone(ctx context.Context, phone string) (*entity.Identity, error)
}
