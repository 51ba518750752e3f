package service

import (
	"context"
	"time"
)

// OTPEvent asks the delivery worker to send a one-time code by SMS.
type OTPEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Handle    string    `json:"handle"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOTPEvent publishes a code delivery request for async processing
	PublishOTPEvent(ctx context.Context, event *OTPEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
