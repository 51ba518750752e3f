package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderService struct {
	orderRepo repository.OrderRepository
	notifier  *customerNotifier
	location  *time.Location
	logger    *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	DeviceRepo    repository.DeviceRepository
	Notifications service.NotificationService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		orderRepo: params.OrderRepo,
		notifier:  newCustomerNotifier(params.DeviceRepo, params.Notifications, params.Logger),
		location:  params.Config.Location(),
		logger:    params.Logger,
	}
}

// SendDeliveryReminders notifies every customer with a delivery due on the
// day of now. Cancelled and delivered orders are skipped.
func (srv *reminderService) SendDeliveryReminders(ctx context.Context, now time.Time) (*usecase.ReminderResult, error) {
	orders, err := srv.orderRepo.Find(ctx, repository.OrderQuery{
		Delivery: view.DayRange(now, srv.location),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find today's deliveries")
	}

	pending := make(map[string][]*entity.Order)
	for _, order := range orders {
		if order.Status == entity.OrderStatusCancelled || order.Status == entity.OrderStatusDelivered {
			continue
		}
		pending[order.UserID] = append(pending[order.UserID], order)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	result := &usecase.ReminderResult{Customers: len(pending)}
	for uid, due := range pending {
		push, err := srv.notifier.Notify(ctx, []string{uid}, reminderMessage(due))
		if err != nil {
			logger.Warn("Failed to send delivery reminder", slog.String("uid", uid), slog.Any("error", err))
			result.Failed++

			continue
		}
		result.Sent += push.Sent
		result.Failed += push.Failed
	}

	logger.Info("Delivery reminders sent",
		slog.Int("customers", result.Customers),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func reminderMessage(orders []*entity.Order) service.Push {
	body := fmt.Sprintf("Your order of %s arrives today.", orders[0].ProductName)
	if len(orders) > 1 {
		body = fmt.Sprintf("%d orders totalling %s arrive today.", len(orders), view.FormatCurrency(view.GrandTotal(orders)))
	}

	return service.Push{
		Title: "Delivery today",
		Body:  body,
		Data:  map[string]string{service.PushKeyKind: service.PushKindDeliveryReminder},
	}
}
