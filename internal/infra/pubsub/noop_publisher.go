package pubsub

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// noopPublisher logs the code instead of publishing it, so sign-in works
// locally without a worker.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOTPEvent(ctx context.Context, event *service.OTPEvent) error {
	p.logger.WarnContext(ctx, "[NoopPubSub] OTP delivery disabled, code logged for development",
		slog.String("handle", event.Handle),
		slog.String("phone", event.Phone),
		slog.String("code", event.Code),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }
