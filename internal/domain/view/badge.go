// Package view holds the pure computators that turn stored records into the
// values screens display. Nothing here mutates its inputs or performs I/O.
package view

import "storefront/internal/domain/entity"

// Display colors.
const (
	ColorPrimary = "#f97316"
	ColorBlue    = "#3b82f6"
	ColorPurple  = "#8b5cf6"
	ColorGreen   = "#22c55e"
	ColorRed     = "#ef4444"
	ColorNeutral = "#9ca3af"
)

// Badge is a label with its display color.
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// StatusBadge maps an order status to its badge. Values outside the known
// set yield the Unknown badge.
func StatusBadge(status entity.OrderStatus) Badge {
	switch status {
	case entity.OrderStatusPending:
		return Badge{Text: "Pending", Color: ColorPrimary}
	case entity.OrderStatusProcessing:
		return Badge{Text: "Processing", Color: ColorBlue}
	case entity.OrderStatusShipped:
		return Badge{Text: "Shipped", Color: ColorPurple}
	case entity.OrderStatusDelivered:
		return Badge{Text: "Delivered", Color: ColorGreen}
	case entity.OrderStatusCancelled:
		return Badge{Text: "Cancelled", Color: ColorRed}
	default:
		return Badge{Text: "Unknown", Color: ColorNeutral}
	}
}

// PaymentBadge maps a stored payment value to its badge. Only the exact
// string "paid" counts as paid.
func PaymentBadge(payment string) Badge {
	if payment == entity.PaymentPaid {
		return Badge{Text: "Paid", Color: ColorGreen}
	}

	return Badge{Text: "Unpaid", Color: ColorRed}
}

// TogglePayment returns the value the payment toggle writes next.
func TogglePayment(payment string) string {
	if payment == entity.PaymentPaid {
		return entity.PaymentUnpaid
	}

	return entity.PaymentPaid
}

// PaymentActionLabel is the caption of the payment toggle.
func PaymentActionLabel(payment string) string {
	if payment == entity.PaymentPaid {
		return "Mark as Unpaid"
	}

	return "Mark as Paid"
}

// NextStatuses lists the statuses an administrator can move an order to,
// which is every status except the current one.
func NextStatuses(current entity.OrderStatus) []entity.OrderStatus {
	next := make([]entity.OrderStatus, 0, len(entity.OrderStatuses))
	for _, status := range entity.OrderStatuses {
		if status != current {
			next = append(next, status)
		}
	}

	return next
}
