package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReminderService(t *testing.T) (usecase.ReminderUsecase, *mockRepo.MockOrderRepository, *mockRepo.MockDeviceRepository, *mockSvc.MockNotificationService) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifications := mockSvc.NewMockNotificationService(t)

	svc := NewReminderService(ReminderServiceParams{
		OrderRepo:     orderRepo,
		DeviceRepo:    deviceRepo,
		Notifications: notifications,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return svc, orderRepo, deviceRepo, notifications
}

func TestReminderService_SendDeliveryReminders(t *testing.T) {
	svc, orderRepo, deviceRepo, notifications := createTestReminderService(t)
	ctx := context.Background()
	loc := testLocation(t)
	now := time.Date(2024, 3, 10, 7, 0, 0, 0, loc)

	orderRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(q repository.OrderQuery) bool {
			return q.Delivery.From.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, loc))
		})).
		Return([]*entity.Order{
			{ID: "o1", UserID: "u1", ProductName: "Rice", TotalPrice: 100, Status: entity.OrderStatusShipped},
			{ID: "o2", UserID: "u1", ProductName: "Dal", TotalPrice: 50.5, Status: entity.OrderStatusProcessing},
			{ID: "o3", UserID: "u2", ProductName: "Milk", Status: entity.OrderStatusCancelled},
			{ID: "o4", UserID: "u3", ProductName: "Eggs", Status: entity.OrderStatusPending},
		}, nil)

	deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"u1"}).
		Return([]*entity.UserDevice{{UserID: "u1", FCMToken: "t1", IsActive: true}}, nil)
	deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"u3"}).
		Return([]*entity.UserDevice{{UserID: "u3", FCMToken: "t3", IsActive: true}}, nil)

	notifications.EXPECT().
		Multicast(ctx, []string{"t1"}, service.Push{
			Title: "Delivery today",
			Body:  "2 orders totalling ₹150.50 arrive today.",
			Data:  map[string]string{service.PushKeyKind: service.PushKindDeliveryReminder},
		}).
		Return(&service.MulticastResult{Sent: 1}, nil)
	notifications.EXPECT().
		Multicast(ctx, []string{"t3"}, mock.MatchedBy(func(push service.Push) bool {
			return push.Body == "Your order of Eggs arrives today."
		})).
		Return(nil, errors.New("fcm unavailable"))

	result, err := svc.SendDeliveryReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Customers)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestReminderService_NoDeliveries(t *testing.T) {
	svc, orderRepo, _, _ := createTestReminderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().Find(ctx, mock.Anything).Return(nil, nil)

	result, err := svc.SendDeliveryReminders(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReminderResult{}, result)
}
