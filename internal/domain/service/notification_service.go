package service

import "context"

// Push kinds carried under PushKeyKind.
const (
	PushKindOrderStatus      = "order_status"
	PushKindOrderPayment     = "order_payment"
	PushKindDeliveryReminder = "delivery_reminder"
)

// Data keys of a Push.
const (
	PushKeyKind    = "type"
	PushKeyOrderID = "order_id"
	PushKeyStatus  = "status"
	PushKeyPayment = "payment"
)

// Push is one notification shown on a customer's device.
type Push struct {
	Title string
	Body  string
	Data  map[string]string
}

// MulticastResult reports one multicast send.
type MulticastResult struct {
	Sent   int
	Failed int
	// InvalidTokens are the tokens the push service no longer accepts.
	InvalidTokens []string
}

// NotificationService delivers pushes to registered devices
type NotificationService interface {
	// Multicast sends push to every token. Callers split tokens into batches of at most 500.
	Multicast(ctx context.Context, tokens []string, push Push) (*MulticastResult, error)

	// Send pushes to a single device token
	Send(ctx context.Context, token string, push Push) error
}
