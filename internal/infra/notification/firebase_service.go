// Package notification delivers push notifications to customer devices.
package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// messagingClient is the part of messaging.Client the service needs.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// NewNotificationService returns an FCM-backed NotificationService, or a
// logging no-op when Firebase is not configured.
func NewNotificationService(app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		return &noopService{logger: logger}, nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send pushes to a single device token
func (s *firebaseService) Send(ctx context.Context, token string, push service.Push) error {
	message := &messaging.Message{
		Token:        token,
		Notification: notificationOf(push),
		Data:         push.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// Multicast sends push to up to 500 device tokens
func (s *firebaseService) Multicast(ctx context.Context, tokens []string, push service.Push) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	if len(tokens) > maxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(push),
		Data:         push.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{Sent: response.SuccessCount, Failed: response.FailureCount}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		// Unregistered and malformed tokens will never succeed again.
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func notificationOf(push service.Push) *messaging.Notification {
	return &messaging.Notification{Title: push.Title, Body: push.Body}
}

// noopService drops notifications when push is not configured.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) Send(ctx context.Context, _ string, push service.Push) error {
	s.logger.DebugContext(ctx, "Push disabled, dropping notification", slog.String("title", push.Title))

	return nil
}

func (s *noopService) Multicast(ctx context.Context, tokens []string, push service.Push) (*service.MulticastResult, error) {
	s.logger.DebugContext(ctx, "Push disabled, dropping notifications",
		slog.String("title", push.Title),
		slog.Int("tokens", len(tokens)),
	)

	return &service.MulticastResult{}, nil
}
