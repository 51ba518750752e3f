package entity

import "time"

// TimeRange is an inclusive instant range. A zero range matches everything.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the range is unset.
func (r TimeRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t lies within the range, inclusive at both ends.
func (r TimeRange) Contains(t time.Time) bool {
	if r.IsZero() {
		return true
	}

	return !t.Before(r.From) && !t.After(r.To)
}
