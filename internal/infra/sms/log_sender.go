package sms

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender writes messages to the log instead of sending them. Only for development.
func NewLogSender(logger *slog.Logger) service.SMSSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendSMS(ctx context.Context, phone, body string) error {
	s.logger.InfoContext(ctx, "[LogSMS] Message not sent, logged for development",
		slog.String("phone", phone),
		slog.String("body", body),
	)

	return nil
}
