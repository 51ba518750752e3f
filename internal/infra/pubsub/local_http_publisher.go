package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localSubscription names the subscription in envelopes posted by the local publisher.
const localSubscription = "projects/local/subscriptions/otp-delivery"

// PushMessage is the JSON body Google Pub/Sub posts to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher stands in for a push subscription during development:
// it posts each event straight to the worker.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishOTPEvent(ctx context.Context, event *service.OTPEvent) error {
	encoded, err := encodeOTPEvent(event)
	if err != nil {
		return err
	}

	var msg PushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	msg.Message.Attributes = encoded.attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := p.post(ctx, body, event.RequestID); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[LocalPubSub] OTP event published",
		slog.String("endpoint", p.endpoint),
		slog.String("handle", event.Handle),
		slog.String("message_id", msg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach worker")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 256))

		return errors.Errorf("worker returned non-success status: %d %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
