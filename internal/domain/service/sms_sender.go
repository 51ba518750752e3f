package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSMSRejected is returned when the gateway refuses a message for good.
// Retrying the same message cannot succeed.
var ErrSMSRejected = errors.New("sms gateway rejected the message")

// SMSSender delivers text messages to phone numbers.
type SMSSender interface {
	// SendSMS sends body to phone, given in E.164 form.
	SendSMS(ctx context.Context, phone, body string) error
}
