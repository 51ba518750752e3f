// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Output DTOs ---

// SendOTPOutput identifies the pending verification the client must confirm.
type SendOTPOutput struct {
	Handle    string    `json:"handle"`
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthOutput returns the generated tokens and the session they open.
type AuthOutput struct {
	Tokens  entity.AuthTokens `json:"tokens"`
	Session *entity.Session   `json:"session"`
	Landing string            `json:"landing"` // Route the client navigates to.
}

// AuthUsecase defines phone sign-in, token refresh and sign-out.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SendOTP validates a 10-digit phone number and dispatches a one-time code to it.
	SendOTP(ctx context.Context, phone string) (*SendOTPOutput, error)

	// ConfirmOTP checks a 6-digit code against the pending verification.
	ConfirmOTP(ctx context.Context, handle, code string) (*AuthOutput, error)

	// ConfirmIDToken signs in with an ID token minted by the managed auth service.
	ConfirmIDToken(ctx context.Context, idToken string) (*AuthOutput, error)

	// Refresh exchanges a refresh token for a new pair, picking up role changes.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// SignOut revokes a refresh token.
	SignOut(ctx context.Context, refreshToken string) error

	// Session resolves the navigation context of an identity.
	Session(ctx context.Context, identity entity.Identity) (*entity.Session, error)
}
