package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderQuery selects orders. Zero-valued fields do not filter.
type OrderQuery struct {
	UserID   string           // Restrict to one customer.
	Delivery entity.TimeRange // Inclusive range on DeliveryDate.
	Ordered  entity.TimeRange // Inclusive range on OrderedAt.
	Payment  string           // Exact, case-sensitive match on the stored payment value.

	// NewestFirst orders the result by OrderedAt descending. Otherwise the
	// storage order is unspecified.
	NewestFirst bool
}

// Matches reports whether order satisfies the query.
func (q OrderQuery) Matches(order *entity.Order) bool {
	if q.UserID != "" && order.UserID != q.UserID {
		return false
	}
	if q.Payment != "" && order.Payment != q.Payment {
		return false
	}

	return q.Delivery.Contains(order.DeliveryDate) && q.Ordered.Contains(order.OrderedAt)
}

// OrderRepository defines the persistence operations of orders.
type OrderRepository interface {
	// Create persists a new order and assigns its ID and OrderedAt.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Find retrieves every order matching query.
	Find(ctx context.Context, query OrderQuery) ([]*entity.Order, error)

	// UpdateStatus overwrites the status of an order.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// UpdatePayment overwrites the payment value of an order.
	UpdatePayment(ctx context.Context, id string, payment string) error

	// WatchOrders streams every order matching query.
	WatchOrders(ctx context.Context, query OrderQuery, listener Listener[[]*entity.Order]) (Unsubscribe, error)
}
