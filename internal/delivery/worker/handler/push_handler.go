package handler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushHandler receives Pub/Sub push messages and texts verification codes.
//
// Pub/Sub redelivers on any non-2xx answer, so only transient SMS failures
// answer 503. Malformed payloads answer 400 and are left to the dead-letter
// policy of the subscription.
type PushHandler struct {
	auth    *pushAuthenticator
	logger  *slog.Logger
	sender  service.SMSSender
	metrics *metrics.Metrics
	now     func() time.Time
}

type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Sender  service.SMSSender
	Metrics *metrics.Metrics `optional:"true"`
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:  params.Logger,
		sender:  params.Sender,
		metrics: params.Metrics,
		now:     time.Now,
	}
	if verifiesPushAuth(params.Config) {
		var audience string
		if params.Config.Worker != nil {
			audience = params.Config.Worker.PushAudience
		}
		h.auth = newPushAuthenticator(audience)
	}

	return h
}

// verifiesPushAuth is true for a real Pub/Sub subscription outside local environments.
func verifiesPushAuth(cfg *config.Config) bool {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderGoogle {
		return false
	}

	return cfg.Env.Env != constants.EnvDevelop && cfg.Env.Env != constants.EnvLocal
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.auth != nil {
		if err := h.auth.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		h.record(metrics.DeliveryDropped)
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := msg.otpEvent()
	if err != nil {
		h.record(metrics.DeliveryDropped)
		h.logger.Error("[Worker] Dropping push message",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := h.extractRequestID(ctx, &msg, event)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	logger.Info("[Worker] Processing OTP event",
		slog.String("handle", event.Handle),
		slog.String("message_id", msg.Message.MessageID),
	)

	outcome, err := h.deliverCode(ctx, event)
	h.record(outcome)
	if err != nil {
		logger.Error("[Worker] Failed to deliver OTP",
			slog.String("handle", event.Handle),
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)
	}
	if outcome == metrics.DeliveryRetry {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the message's request ID, then the one the request
// ID middleware stored, and generates one as a last resort.
func (h *PushHandler) extractRequestID(ctx context.Context, msg *PubSubMessage, event *service.OTPEvent) string {
	if id := msg.requestID(event); id != "" {
		return id
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

// deliverCode texts the code unless it already expired and reports the outcome.
func (h *PushHandler) deliverCode(ctx context.Context, event *service.OTPEvent) (string, error) {
	remaining := event.ExpiresAt.Sub(h.now())
	if !event.ExpiresAt.IsZero() && remaining <= 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Skipping expired OTP",
			slog.String("handle", event.Handle),
		)

		return metrics.DeliveryExpired, nil
	}

	err := h.sender.SendSMS(ctx, event.Phone, codeMessage(event.Code, remaining))
	switch {
	case err == nil:
		return metrics.DeliverySent, nil
	case errors.Is(err, service.ErrSMSRejected):
		return metrics.DeliveryRejected, err
	default:
		return metrics.DeliveryRetry, err
	}
}

func (h *PushHandler) record(outcome string) {
	if h.metrics != nil {
		h.metrics.OTPDelivered(outcome)
	}
}

// codeMessage is the text a customer receives.
func codeMessage(code string, remaining time.Duration) string {
	minutes := int(math.Ceil(remaining.Minutes()))
	switch {
	case minutes <= 0:
		return fmt.Sprintf("%s is your verification code.", code)
	case minutes == 1:
		return fmt.Sprintf("%s is your verification code. It expires in 1 minute.", code)
	default:
		return fmt.Sprintf("%s is your verification code. It expires in %d minutes.", code, minutes)
	}
}
