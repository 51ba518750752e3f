package view

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status entity.OrderStatus
		want   Badge
	}{
		{entity.OrderStatusPending, Badge{"Pending", ColorPrimary}},
		{entity.OrderStatusProcessing, Badge{"Processing", ColorBlue}},
		{entity.OrderStatusShipped, Badge{"Shipped", ColorPurple}},
		{entity.OrderStatusDelivered, Badge{"Delivered", ColorGreen}},
		{entity.OrderStatusCancelled, Badge{"Cancelled", ColorRed}},
		{"returned", Badge{"Unknown", ColorNeutral}},
		{"", Badge{"Unknown", ColorNeutral}},
		{"Pending", Badge{"Unknown", ColorNeutral}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusBadge(tt.status))
		})
	}
}

func TestPaymentBadge_CaseSensitive(t *testing.T) {
	assert.Equal(t, Badge{"Paid", ColorGreen}, PaymentBadge("paid"))
	assert.Equal(t, Badge{"Unpaid", ColorRed}, PaymentBadge("unpaid"))
	assert.Equal(t, Badge{"Unpaid", ColorRed}, PaymentBadge("Unpaid"))
	assert.Equal(t, Badge{"Unpaid", ColorRed}, PaymentBadge("Paid"))
	assert.Equal(t, Badge{"Unpaid", ColorRed}, PaymentBadge(""))
}

func TestTogglePayment(t *testing.T) {
	assert.Equal(t, entity.PaymentPaid, TogglePayment(entity.PaymentUnpaid))
	assert.Equal(t, entity.PaymentPaid, TogglePayment(entity.PaymentUnpaidLegacy))
	assert.Equal(t, entity.PaymentUnpaid, TogglePayment(entity.PaymentPaid))

	assert.Equal(t, "Mark as Paid", PaymentActionLabel("unpaid"))
	assert.Equal(t, "Mark as Unpaid", PaymentActionLabel("paid"))
}

func TestNextStatuses_ExcludesCurrent(t *testing.T) {
	next := NextStatuses(entity.OrderStatusShipped)

	assert.Len(t, next, 4)
	assert.NotContains(t, next, entity.OrderStatusShipped)
	assert.Equal(t, entity.OrderStatusPending, next[0])

	assert.Len(t, NextStatuses("unknown"), len(entity.OrderStatuses))
}
