package form

import (
	"encoding/json"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	var body struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"12","b":3,"c":null}`), &body))
	assert.Equal(t, Text("12"), body.A)
	assert.Equal(t, Text("3"), body.B)
	assert.Equal(t, Text(""), body.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &body))
}

func TestParseDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	day, err := ParseDay(" 2024-03-12 ", loc)
	require.NoError(t, err)
	assert.True(t, day.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, loc)))
	assert.Equal(t, "2024-03-12", FormatDay(day))

	day, err = ParseDay("", loc)
	assert.NoError(t, err)
	assert.Nil(t, day)
	assert.Equal(t, "", FormatDay(nil))

	_, err = ParseDay("12/03/2024", loc)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryDateInvalid)
}
