package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Firebase batch size limit
const firebaseBatchSize = 500

// pushResult counts delivered and failed device sends.
type pushResult struct {
	Sent   int
	Failed int
}

// customerNotifier pushes messages to customers' registered devices and
// deactivates the devices whose tokens the push service rejects.
type customerNotifier struct {
	deviceRepo    repository.DeviceRepository
	notifications service.NotificationService
	logger        *slog.Logger
}

func newCustomerNotifier(deviceRepo repository.DeviceRepository, notifications service.NotificationService, logger *slog.Logger) *customerNotifier {
	return &customerNotifier{
		deviceRepo:    deviceRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// Notify sends push to all active devices of userIDs. A failing batch is
// counted as failed and the remaining batches are still attempted.
func (n *customerNotifier) Notify(ctx context.Context, userIDs []string, push service.Push) (*pushResult, error) {
	result := &pushResult{}
	if len(userIDs) == 0 {
		return result, nil
	}

	devices, err := n.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	tokens := entity.PushTokens(devices)
	if len(tokens) == 0 {
		return result, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		sent, err := n.notifications.Multicast(ctx, batch, push)
		if err != nil {
			logger.Error("Failed to send notification batch", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent.Sent
		result.Failed += sent.Failed
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := n.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}

	return result, nil
}
