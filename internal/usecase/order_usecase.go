package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/view"
)

// --- Input DTOs ---

// PlaceOrderInput defines a customer's order from the product sheet.
type PlaceOrderInput struct {
	ProductID string
	// Quantity as typed: digits only.
	Quantity string
	// DeliveryDate defaults to tomorrow when nil.
	DeliveryDate *time.Time
}

// CreateOrderInput defines an order entered by an administrator on behalf of a customer.
type CreateOrderInput struct {
	UserID    string
	ProductID string
	Quantity  string
	// DeliveryDate defaults to tomorrow when nil. Any day is accepted.
	DeliveryDate *time.Time
	// Payment defaults to unpaid.
	Payment string
}

// OrderFilter defines the admin order list filters. Zero values do not filter.
type OrderFilter struct {
	Day            *time.Time // Delivery day.
	Payment        string
	CustomerSearch string
}

// --- Output DTOs ---

// DashboardOutput holds the admin dashboard counters and the selected tab's orders.
type DashboardOutput struct {
	Stats  view.Stats              `json:"stats"`
	Tab    view.DashboardTab       `json:"tab"`
	Orders []*entity.CustomerOrder `json:"orders"`
}

// OrderUsecase defines order taking and administration.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, uid string, input *PlaceOrderInput) (*entity.Order, error)

	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// ListMyOrders returns a customer's orders delivered on day, or all of them newest first when day is nil.
	ListMyOrders(ctx context.Context, uid string, day *time.Time) ([]*entity.Order, error)

	// ListOrders returns every order matching filter, joined with customer details.
	ListOrders(ctx context.Context, filter *OrderFilter) ([]*entity.CustomerOrder, error)

	// ListCustomers returns the customers an administrator can order for.
	ListCustomers(ctx context.Context) ([]*entity.User, error)

	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	UpdatePayment(ctx context.Context, orderID string, payment string) (*entity.Order, error)

	Dashboard(ctx context.Context, tab view.DashboardTab, now time.Time) (*DashboardOutput, error)

	WatchMyOrders(ctx context.Context, uid string, day *time.Time, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error)

	WatchOrders(ctx context.Context, filter *OrderFilter, listener repository.Listener[[]*entity.CustomerOrder]) (repository.Unsubscribe, error)

	WatchDashboard(ctx context.Context, tab view.DashboardTab, now time.Time, listener repository.Listener[*DashboardOutput]) (repository.Unsubscribe, error)

	WatchCustomers(ctx context.Context, listener repository.Listener[[]*entity.User]) (repository.Unsubscribe, error)
}
