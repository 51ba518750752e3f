package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type webhookSender struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

type webhookMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// NewWebhookSender posts each message as JSON to an SMS gateway
func NewWebhookSender(url string, logger *slog.Logger) service.SMSSender {
	return &webhookSender{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (s *webhookSender) SendSMS(ctx context.Context, phone, body string) error {
	payload, err := json.Marshal(webhookMessage{To: phone, Body: body})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return errors.Wrapf(service.ErrSMSRejected, "status %d", resp.StatusCode)
	default:
		return errors.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	s.logger.DebugContext(ctx, "[WebhookSMS] Message accepted", slog.String("phone", phone))

	return nil
}
