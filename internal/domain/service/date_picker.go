package service

import (
	"context"
	"time"
)

// DatePicker asks the user for a calendar day. ok is false when the user
// dismissed the picker without choosing.
type DatePicker interface {
	Pick(ctx context.Context) (day time.Time, ok bool, err error)
}

// DatePickerFunc adapts a function to DatePicker.
type DatePickerFunc func(ctx context.Context) (time.Time, bool, error)

// Pick calls f.
func (f DatePickerFunc) Pick(ctx context.Context) (time.Time, bool, error) {
	return f(ctx)
}

// FixedDate is a picker that already holds the user's answer, as when the day
// arrives with the request. A zero day means nothing was picked.
type FixedDate time.Time

// Pick returns the held day.
func (d FixedDate) Pick(context.Context) (time.Time, bool, error) {
	t := time.Time(d)

	return t, !t.IsZero(), nil
}
