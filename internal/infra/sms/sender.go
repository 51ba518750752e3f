// Package sms delivers verification codes as text messages.
package sms

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for SMSSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSender creates the SMSSender selected by worker.smsSender
func NewSender(params SenderParams) (service.SMSSender, error) {
	cfg := params.Config.Worker
	if cfg == nil || cfg.SMSSender == "" || cfg.SMSSender == constants.SMSSenderLog {
		params.Logger.Warn("Using log SMS sender, codes are written to the log")

		return NewLogSender(params.Logger), nil
	}

	switch cfg.SMSSender {
	case constants.SMSSenderWebhook:
		if cfg.SMSWebhookURL == "" {
			return nil, errors.New("webhook URL is required for webhook SMS sender")
		}
		params.Logger.Info("Using webhook SMS sender", slog.String("url", cfg.SMSWebhookURL))

		return NewWebhookSender(cfg.SMSWebhookURL, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown SMS sender: %s", cfg.SMSSender)
	}
}

// Module provides the SMS FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSender),
)
