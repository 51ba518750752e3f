package handler

import (
	"encoding/base64"
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// attrRequestID is the message attribute carrying the caller's request ID.
const attrRequestID = "request_id"

// PubSubMessage is the body Pub/Sub posts to a push subscription.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// otpEvent decodes the base64 JSON payload into an OTP event and checks it
// names a phone and a code.
func (m *PubSubMessage) otpEvent() (*service.OTPEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.OTPEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an OTP event")
	}
	if event.Phone == "" || event.Code == "" {
		return nil, errors.New("event carries no phone or code")
	}

	return &event, nil
}

// requestID prefers the message attribute over the payload field.
func (m *PubSubMessage) requestID(event *service.OTPEvent) string {
	if id := m.Message.Attributes[attrRequestID]; id != "" {
		return id
	}
	if event != nil {
		return event.RequestID
	}

	return ""
}
