package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CompleteProfileInput defines the data entered on the signup screen.
type CompleteProfileInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// CompleteProfile creates the profile of a signed-in identity with the customer role.
	CompleteProfile(ctx context.Context, identity entity.Identity, input *CompleteProfileInput) (*entity.User, error)

	GetProfile(ctx context.Context, uid string) (*entity.User, error)

	// SuggestAddress reverse geocodes a position into an address line.
	SuggestAddress(ctx context.Context, latitude, longitude float64) (string, error)

	// TodaysDeliveries lists the user's orders to be delivered on now's calendar day.
	TodaysDeliveries(ctx context.Context, uid string, now time.Time) ([]*entity.Order, error)

	WatchTodaysDeliveries(ctx context.Context, uid string, now time.Time, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error)
}
