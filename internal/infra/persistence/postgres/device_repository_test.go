package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_CreateDevice_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`INSERT INTO "user_devices"`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := repo.CreateDevice(context.Background(), &entity.UserDevice{UserID: "u1", DeviceID: "d1", FCMToken: "t", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceRepository_CreateDevice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`INSERT INTO "user_devices"`).WillReturnResult(sqlmock.NewResult(0, 1))

	device := &entity.UserDevice{UserID: "u1", DeviceID: "d1", FCMToken: "t", Platform: "android", IsActive: true}
	require.NoError(t, repo.CreateDevice(context.Background(), device))
	assert.NotEmpty(t, device.ID)
}

func TestDeviceRepository_FindActiveDevicesByUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	devices, err := repo.FindActiveDevicesByUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, devices)

	mock.ExpectQuery(`SELECT \* FROM "user_devices" WHERE \(user_id IN \(\$1,\$2\) AND is_active = \$3\)`).
		WithArgs("u1", "u2", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "fcm_token", "device_id", "platform", "is_active"}).
			AddRow("dev-1", "u1", "t1", "d1", "ios", true))

	devices, err = repo.FindActiveDevicesByUsers(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "t1", devices[0].FCMToken)
}

func TestDeviceRepository_UpdateFCMToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateFCMToken(context.Background(), "dev-1", "t2"), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeactivateByTokens(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	require.NoError(t, repo.DeactivateByTokens(context.Background(), nil))

	mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=\$1,"updated_at"=\$2 WHERE fcm_token IN \(\$3\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeactivateByTokens(context.Background(), []string{"stale"}))
}

func TestDeviceRepository_DeactivateDevice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeactivateDevice(context.Background(), "0b8f6c1e-8f7a-4d55-9b1f-3f8c2f9a1d10"))

	mock.ExpectExec(`UPDATE "user_devices" SET`).
		WillReturnError(&pgconn.PgError{Code: invalidTextRepresentation})
	assert.ErrorIs(t, repo.DeactivateDevice(context.Background(), "not-a-uuid"), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_FindDeviceByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_devices" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindDeviceByID(context.Background(), "0b8f6c1e-8f7a-4d55-9b1f-3f8c2f9a1d10")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
