// Package form decodes the input fields shared by the REST API and the live screens.
package form

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// DayLayout is the calendar day format of query parameters and payloads.
const DayLayout = time.DateOnly

// Text is a form field that accepts both JSON strings and numbers, kept as
// the text the user typed.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*t = Text(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.WithStack(err)
	}
	*t = Text(n.String())

	return nil
}

// ParseDay reads a YYYY-MM-DD value as midnight in loc. Blank means no day.
func ParseDay(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil // no day picked
	}

	day, err := time.ParseInLocation(DayLayout, value, loc)
	if err != nil {
		return nil, domainerrors.ErrDeliveryDateInvalid.WithDetails("dates use the YYYY-MM-DD format")
	}

	return &day, nil
}

// FormatDay renders t in DayLayout, or blank for nil.
func FormatDay(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(DayLayout)
}
