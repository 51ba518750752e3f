package firestore

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type deviceRepository struct {
	client *firestore.Client
}

// NewDeviceRepository creates a device repository on the devices collection.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

func (r *deviceRepository) devices() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionDevices)
}

func (r *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	existing, err := r.devices().
		Where(fieldUserID, "==", device.UserID).
		Where(fieldDeviceID, "==", device.DeviceID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return errors.Wrap(err, "failed to check existing device")
	}
	if len(existing) > 0 {
		return repository.ErrDuplicateDevice
	}

	ref, result, err := r.devices().Add(ctx, newDeviceDocument(device))
	if err != nil {
		return errors.Wrap(err, "failed to create device")
	}
	device.ID = ref.ID
	device.CreatedAt = result.UpdateTime
	device.UpdatedAt = result.UpdateTime

	return nil
}

func (r *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.UserDevice, error) {
	snap, err := r.devices().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return decodeDevice(snap)
}

func (r *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	snaps, err := r.devices().Where(fieldUserID, "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return decodeDevices(snaps)
}

func (r *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error) {
	var devices []*entity.UserDevice
	for _, ids := range chunk(userIDs, inQueryLimit) {
		snaps, err := r.devices().
			Where(fieldUserID, "in", ids).
			Where(fieldIsActive, "==", true).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active devices")
		}

		decoded, err := decodeDevices(snaps)
		if err != nil {
			return nil, err
		}
		devices = append(devices, decoded...)
	}

	return devices, nil
}

// UpdateFCMToken replaces the token and reactivates the device.
func (r *deviceRepository) UpdateFCMToken(ctx context.Context, id string, fcmToken string) error {
	return r.update(ctx, id, []firestore.Update{
		{Path: fieldFCMToken, Value: fcmToken},
		{Path: fieldIsActive, Value: true},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
}

func (r *deviceRepository) DeactivateDevice(ctx context.Context, id string) error {
	return r.update(ctx, id, deactivation())
}

func (r *deviceRepository) DeactivateByTokens(ctx context.Context, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	writer := r.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, tokens := range chunk(fcmTokens, inQueryLimit) {
		snaps, err := r.devices().Where(fieldFCMToken, "in", tokens).Documents(ctx).GetAll()
		if err != nil {
			writer.End()

			return errors.Wrap(err, "failed to find devices by token")
		}
		for _, snap := range snaps {
			job, err := writer.Update(snap.Ref, deactivation())
			if err != nil {
				writer.End()

				return errors.Wrap(err, "failed to queue device deactivation")
			}
			jobs = append(jobs, job)
		}
	}
	writer.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrap(err, "failed to deactivate device")
		}
	}

	return nil
}

func (r *deviceRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if _, err := r.devices().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to update device")
	}

	return nil
}

func deactivation() []firestore.Update {
	return []firestore.Update{
		{Path: fieldIsActive, Value: false},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	}
}

func decodeDevice(snap *firestore.DocumentSnapshot) (*entity.UserDevice, error) {
	var doc deviceDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode device %s", snap.Ref.ID)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func decodeDevices(snaps []*firestore.DocumentSnapshot) ([]*entity.UserDevice, error) {
	devices := make([]*entity.UserDevice, 0, len(snaps))
	for _, snap := range snaps {
		device, err := decodeDevice(snap)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}
