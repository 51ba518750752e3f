package view

import (
	"time"

	"storefront/internal/domain/entity"
)

// Stats are the counters on the admin dashboard.
type Stats struct {
	TotalOrders      int `json:"total_orders"`
	TodaysOrders     int `json:"todays_orders"`
	TodaysDeliveries int `json:"todays_deliveries"`
}

// DashboardStats counts all orders, those placed today and those to be
// delivered today, with today taken from now's location.
func DashboardStats(orders []*entity.Order, now time.Time) Stats {
	today := DayRange(now, nil)
	stats := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		if !o.OrderedAt.IsZero() && today.Contains(o.OrderedAt) {
			stats.TodaysOrders++
		}
		if !o.DeliveryDate.IsZero() && today.Contains(o.DeliveryDate) {
			stats.TodaysDeliveries++
		}
	}

	return stats
}

// DashboardTab selects the order list under the dashboard counters.
type DashboardTab string

const (
	// TabDeliveries lists orders to be delivered today.
	TabDeliveries DashboardTab = "deliveries"
	// TabOrders lists orders placed today.
	TabOrders DashboardTab = "orders"
)

// ParseDashboardTab falls back to TabDeliveries for unknown values.
func ParseDashboardTab(s string) DashboardTab {
	if DashboardTab(s) == TabOrders {
		return TabOrders
	}

	return TabDeliveries
}

// Field is the order timestamp the tab filters on.
func (t DashboardTab) Field() DateField {
	if t == TabOrders {
		return ByOrderedAt
	}

	return ByDeliveryDate
}

// UnknownCustomer is shown for orders whose customer profile is missing.
const UnknownCustomer = "Unknown User"

// NotAvailable is shown for any missing detail.
const NotAvailable = "N/A"

// Enrich joins orders with their customers' name and phone. Missing
// profiles get the UnknownCustomer name and NotAvailable phone.
func Enrich(orders []*entity.Order, users map[string]*entity.User) []*entity.CustomerOrder {
	out := make([]*entity.CustomerOrder, 0, len(orders))
	for _, o := range orders {
		co := &entity.CustomerOrder{Order: o, UserName: UnknownCustomer, UserPhone: NotAvailable}
		if u, ok := users[o.UserID]; ok && u != nil {
			if u.Name != "" {
				co.UserName = u.Name
			}
			if u.Phone != "" {
				co.UserPhone = u.Phone
			}
		}
		out = append(out, co)
	}

	return out
}
