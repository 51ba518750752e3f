package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
	geocoder  *mockSvc.MockGeocoder
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	svc := NewProfileService(ProfileServiceParams{
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Geocoder:  geocoder,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   svc,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		geocoder:  geocoder,
	}
}

func TestProfileService_CompleteProfile_MissingFields(t *testing.T) {
	fx := createTestProfileService(t)
	identity := entity.Identity{UID: "uid-1", Phone: "+919876543210"}

	cases := []*usecase.CompleteProfileInput{
		{Name: "", Address: "12 MG Road"},
		{Name: "Asha", Address: "   "},
	}
	for _, input := range cases {
		_, err := fx.service.CompleteProfile(context.Background(), identity, input)
		assert.ErrorIs(t, err, domainerrors.ErrProfileFieldsMissing)
	}

	_, err := fx.service.CompleteProfile(context.Background(), entity.Identity{UID: "uid-1"}, &usecase.CompleteProfileInput{Name: "Asha", Address: "12 MG Road"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileFieldsMissing)
}

func TestProfileService_CompleteProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.UID == "uid-1" && u.Name == "Asha" && u.Address == "12 MG Road" &&
				u.Phone == "+919876543210" && u.Role == entity.RoleUser
		})).
		Return(nil)

	user, err := fx.service.CompleteProfile(ctx,
		entity.Identity{UID: "uid-1", Phone: "+919876543210"},
		&usecase.CompleteProfileInput{Name: " Asha ", Address: "12 MG Road"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, "uid-1")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_SuggestAddress_JoinsParts(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().ReverseGeocode(ctx, orb.Point{77.59, 12.97}).Return(&service.GeoAddress{
		Name:       "Cubbon Park",
		Street:     "",
		City:       "Bengaluru",
		PostalCode: "560001",
		Country:    "India",
	}, nil)

	addr, err := fx.service.SuggestAddress(ctx, 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, "Cubbon Park, Bengaluru, 560001, India", addr)
}

func TestProfileService_SuggestAddress_Failure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().ReverseGeocode(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := fx.service.SuggestAddress(ctx, 12.97, 77.59)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestProfileService_SuggestAddress_OutOfRange(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SuggestAddress(context.Background(), 91, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_TodaysDeliveries_QueriesCalendarDay(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	loc := testLocation(t)

	now := time.Date(2024, 3, 10, 20, 0, 0, 0, loc)
	orders := []*entity.Order{{ID: "o1", UserID: "uid-1"}}

	fx.orderRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(q repository.OrderQuery) bool {
			return q.UserID == "uid-1" &&
				q.Delivery.From.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)) &&
				q.Delivery.Contains(time.Date(2024, 3, 10, 23, 59, 59, 0, loc)) &&
				!q.Delivery.Contains(time.Date(2024, 3, 11, 0, 0, 0, 0, loc))
		})).
		Return(orders, nil)

	got, err := fx.service.TodaysDeliveries(ctx, "uid-1", now)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
