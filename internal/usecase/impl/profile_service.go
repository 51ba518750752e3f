package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	geocoder  service.Geocoder
	location  *time.Location
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Geocoder  service.Geocoder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		geocoder:  params.Geocoder,
		location:  params.Config.Location(),
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteProfile creates the profile of a newly verified phone number.
func (srv *profileService) CompleteProfile(ctx context.Context, identity entity.Identity, input *usecase.CompleteProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" || identity.Phone == "" {
		return nil, domainerrors.ErrProfileFieldsMissing
	}

	user := &entity.User{
		UID:     identity.UID,
		Name:    name,
		Phone:   identity.Phone,
		Address: address,
		Role:    entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user profile")
	}

	srv.log(ctx).Info("Profile completed", slog.String("uid", user.UID))

	return user, nil
}

// GetProfile retrieves a user profile.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// SuggestAddress reverse geocodes a position. The caller falls back to manual
// entry when this fails, so errors are reported as a service failure only.
func (srv *profileService) SuggestAddress(ctx context.Context, latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return "", domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	addr, err := srv.geocoder.ReverseGeocode(ctx, orb.Point{longitude, latitude})
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "failed to reverse geocode")
	}

	return view.JoinAddress(addr.Name, addr.Street, addr.City, addr.PostalCode, addr.Country), nil
}

// TodaysDeliveries lists the orders to be delivered to uid today.
func (srv *profileService) TodaysDeliveries(ctx context.Context, uid string, now time.Time) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.Find(ctx, srv.todayQuery(uid, now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find today's deliveries")
	}

	return orders, nil
}

// WatchTodaysDeliveries streams the orders to be delivered to uid today.
func (srv *profileService) WatchTodaysDeliveries(ctx context.Context, uid string, now time.Time, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
	unsub, err := srv.orderRepo.WatchOrders(ctx, srv.todayQuery(uid, now), listener)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch today's deliveries")
	}

	return unsub, nil
}

func (srv *profileService) todayQuery(uid string, now time.Time) repository.OrderQuery {
	return repository.OrderQuery{
		UserID:   uid,
		Delivery: view.DayRange(now, srv.location),
	}
}
