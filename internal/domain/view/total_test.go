package view

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		quantity string
		want     LineTotal
	}{
		{"three litres of milk", 60, "3", LineTotal{Quantity: 3, Total: 180, Show: true, CanSubmit: true}},
		{"rounds to two decimals", 19.99, "3", LineTotal{Quantity: 3, Total: 59.97, Show: true, CanSubmit: true}},
		{"fractional price", 10.1, "3", LineTotal{Quantity: 3, Total: 30.3, Show: true, CanSubmit: true}},
		{"empty hides total", 60, "", LineTotal{}},
		{"zero hides total", 60, "0", LineTotal{}},
		{"leading zeros", 5, "007", LineTotal{Quantity: 7, Total: 35, Show: true, CanSubmit: true}},
		{"negative rejected", 60, "-2", LineTotal{}},
		{"decimal rejected", 60, "1.5", LineTotal{}},
		{"letters rejected", 60, "2a", LineTotal{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLineTotal(tt.price, tt.quantity))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	q, ok := ParseQuantity("12")
	assert.True(t, ok)
	assert.Equal(t, 12, q)

	q, ok = ParseQuantity("")
	assert.True(t, ok)
	assert.Zero(t, q)

	_, ok = ParseQuantity(" 1")
	assert.False(t, ok)

	_, ok = ParseQuantity("99999999999999999999999")
	assert.False(t, ok)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "180.00", FormatAmount(180))
	assert.Equal(t, "0.30", FormatAmount(0.1+0.2))
	assert.Equal(t, "₹45.50", FormatCurrency(45.5))
}

func TestGrandTotal_IndependentOfOrder(t *testing.T) {
	a := &entity.Order{TotalPrice: 0.1}
	b := &entity.Order{TotalPrice: 0.2}
	c := &entity.Order{TotalPrice: 180}

	forward := GrandTotal([]*entity.Order{a, b, c})
	backward := GrandTotal([]*entity.Order{c, b, a})

	assert.Equal(t, 180.3, forward)
	assert.Equal(t, forward, backward)
	assert.Zero(t, GrandTotal([]*entity.Order{}))
}

func TestGrandTotal_CustomerOrders(t *testing.T) {
	rows := []*entity.CustomerOrder{
		{Order: &entity.Order{TotalPrice: 12.5}},
		{Order: &entity.Order{TotalPrice: 7.25}},
	}

	assert.Equal(t, 19.75, GrandTotal(rows))
}
