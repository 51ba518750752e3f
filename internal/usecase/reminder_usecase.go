package usecase

import (
	"context"
	"time"
)

// ReminderResult summarises one reminder run.
type ReminderResult struct {
	Customers int `json:"customers"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

// ReminderUsecase notifies customers about deliveries due today.
type ReminderUsecase interface {
	SendDeliveryReminders(ctx context.Context, now time.Time) (*ReminderResult, error)
}
