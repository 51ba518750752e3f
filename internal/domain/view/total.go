package view

import (
	"fmt"
	"math"
	"strconv"
)

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders v with exactly two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// FormatCurrency renders v as a rupee amount.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("₹%s", FormatAmount(v))
}

// ParseQuantity parses a quantity typed by the user. Only empty text or
// ASCII digits are accepted; empty text is zero.
func ParseQuantity(text string) (int, bool) {
	if text == "" {
		return 0, true
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	q, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}

	return q, true
}

// LineTotal is the running total shown while a quantity is typed.
type LineTotal struct {
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	Show      bool    `json:"show"`       // Whether the total is displayed at all.
	CanSubmit bool    `json:"can_submit"` // Whether the order button is enabled.
}

// ComputeLineTotal derives the line total for a unit price and the quantity
// text. Zero, empty or malformed quantities hide the total and disable submission.
func ComputeLineTotal(price float64, quantityText string) LineTotal {
	q, ok := ParseQuantity(quantityText)
	if !ok || q == 0 {
		return LineTotal{}
	}

	return LineTotal{
		Quantity:  q,
		Total:     Round2(price * float64(q)),
		Show:      true,
		CanSubmit: true,
	}
}

// GrandTotal sums TotalPrice over orders. Each amount is taken in whole
// paise so the result does not depend on row order.
func GrandTotal[T interface{ GetTotalPrice() float64 }](orders []T) float64 {
	var paise int64
	for _, o := range orders {
		paise += int64(math.Round(o.GetTotalPrice() * 100))
	}

	return float64(paise) / 100
}
