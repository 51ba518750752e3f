package pubsub

import (
	"encoding/json"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys. The code itself only travels in the payload.
const (
	attrEventType = "event_type"
	attrHandle    = "handle"
	attrRequestID = "request_id"
)

// encodedEvent is an OTP event ready for any transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps resends to one phone in publish order.
	orderingKey string
}

func encodeOTPEvent(event *service.OTPEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("nil OTP event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode OTP event")
	}

	attributes := map[string]string{
		attrEventType: constants.EventTypeOTPRequested,
		attrHandle:    event.Handle,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &encodedEvent{data: data, attributes: attributes, orderingKey: event.Phone}, nil
}
