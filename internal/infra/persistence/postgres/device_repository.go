// Package postgres implements the repositories on PostgreSQL through GORM.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) devices(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.UserDeviceModel{})
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	row := deviceModel(device)
	row.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID, device.CreatedAt, device.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.UserDevice, error) {
	var row model.UserDeviceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return deviceEntity(&row), nil
}

// FindDevicesByUser lists inactive devices too, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return deviceEntities(rows), nil
}

func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return deviceEntities(rows), nil
}

// UpdateFCMToken also reactivates the device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, id string, fcmToken string) error {
	return repo.updateByID(ctx, id, map[string]any{"fcm_token": fcmToken, "is_active": true}, "failed to update FCM token")
}

func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id string) error {
	return repo.updateByID(ctx, id, map[string]any{"is_active": false}, "failed to deactivate device")
}

// updateByID applies values to one device. A missing or malformed ID is ErrDeviceNotFound.
func (repo *deviceRepository) updateByID(ctx context.Context, id string, values map[string]any, failure string) error {
	result := repo.devices(ctx).Where("id = ?", id).Updates(values)
	switch {
	case result.Error != nil && isMalformedID(result.Error):
		return repository.ErrDeviceNotFound
	case result.Error != nil:
		return errors.Wrap(result.Error, failure)
	case result.RowsAffected == 0:
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens silences every device holding one of the tokens the
// push service reported as unregistered.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	if err := repo.devices(ctx).
		Where("fcm_token IN ?", fcmTokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by token")
	}

	return nil
}

func deviceEntity(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		FCMToken:  row.FCMToken,
		DeviceID:  row.DeviceID,
		Platform:  row.Platform,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func deviceEntities(rows []*model.UserDeviceModel) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = deviceEntity(row)
	}

	return devices
}

func deviceModel(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
