package entity

import (
	"math"
	"time"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

// Order statuses. New orders start in OrderStatusProcessing.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid checks if the OrderStatus is one of the defined values.
func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// Payment values as stored on orders. Comparisons are case sensitive.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"

	// PaymentUnpaidLegacy is the capitalised value older customer orders were written with.
	PaymentUnpaidLegacy = "Unpaid"
)

// IsValidPayment checks a payment value supplied by an administrator.
func IsValidPayment(payment string) bool {
	return payment == PaymentPaid || payment == PaymentUnpaid
}

// Order is a single-product purchase. Product fields are copied at creation
// time and never follow later edits of the product.
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	ProductID    string      `json:"product_id"`
	ProductName  string      `json:"product_name"`
	Price        float64     `json:"price"`
	Unit         Unit        `json:"unit"`
	Quantity     int         `json:"quantity"`
	TotalPrice   float64     `json:"total_price"`
	DeliveryDate time.Time   `json:"delivery_date"`
	OrderedAt    time.Time   `json:"ordered_at"`
	Status       OrderStatus `json:"status"`
	Payment      string      `json:"payment"`
}

// NewOrderSnapshot builds an order for a product, copying its name, price and
// unit and computing the total once.
func NewOrderSnapshot(userID string, product *Product, quantity int, deliveryDate time.Time, payment string) *Order {
	return &Order{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Price:        product.Price,
		Unit:         product.Unit,
		Quantity:     quantity,
		TotalPrice:   math.Round(product.Price*float64(quantity)*100) / 100,
		DeliveryDate: deliveryDate,
		Status:       OrderStatusProcessing,
		Payment:      payment,
	}
}

// CustomerOrder is an order enriched with its customer's name and phone for admin screens.
type CustomerOrder struct {
	*Order
	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
}

// GetTotalPrice returns the total fixed at creation.
func (o *Order) GetTotalPrice() float64 {
	return o.TotalPrice
}
