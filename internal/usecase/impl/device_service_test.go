package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "uid-1").
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "uid-1", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existingDevice := &entity.UserDevice{
		ID:       "doc-1",
		UserID:   "uid-1",
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}
	updatedDevice := &entity.UserDevice{
		ID:       "doc-1",
		UserID:   "uid-1",
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "uid-1").
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, "doc-1", "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "doc-1").
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), "uid-1", &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_Platform(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{DeviceID: "d", FCMToken: "t", Platform: "symbian"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "uid-1").Return(nil, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool { return d.Platform == entity.PlatformAndroid })).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{DeviceID: "d", FCMToken: "t", Platform: " Android"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "uid-1").Return(nil, errors.New("db error"))

	_, err := fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{DeviceID: "d", FCMToken: "t", Platform: "android"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "doc-1").Return(&entity.UserDevice{ID: "doc-1", UserID: "uid-1"}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, "doc-1", "new-token").Return(nil)

	assert.NoError(t, fx.service.UpdateFCMToken(ctx, "uid-1", "doc-1", "new-token"))
}

func TestDeviceService_UpdateFCMToken_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "doc-1").Return(&entity.UserDevice{ID: "doc-1", UserID: "someone-else"}, nil)

	err := fx.service.UpdateFCMToken(ctx, "uid-1", "doc-1", "new-token")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "doc-1").Return(&entity.UserDevice{ID: "doc-1", UserID: "uid-1"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, "doc-1").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	assert.NoError(t, fx.service.DeactivateDevice(ctx, "uid-1", "doc-1"))
	assert.ErrorIs(t, fx.service.DeactivateDevice(ctx, "uid-1", "missing"), domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	devices := []*entity.UserDevice{{ID: "doc-1"}, {ID: "doc-2", IsActive: false}}
	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "uid-1").Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, "uid-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
