package view

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDashboardStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{OrderedAt: now.Add(-time.Hour), DeliveryDate: now.AddDate(0, 0, 1)},
		{OrderedAt: now.AddDate(0, 0, -1), DeliveryDate: now},
		{OrderedAt: now.Add(-2 * time.Hour), DeliveryDate: now.Add(time.Hour)},
		{},
	}

	stats := DashboardStats(orders, now)

	assert.Equal(t, Stats{TotalOrders: 4, TodaysOrders: 2, TodaysDeliveries: 2}, stats)
}

func TestParseDashboardTab(t *testing.T) {
	assert.Equal(t, TabOrders, ParseDashboardTab("orders"))
	assert.Equal(t, TabDeliveries, ParseDashboardTab("deliveries"))
	assert.Equal(t, TabDeliveries, ParseDashboardTab(""))
	assert.Equal(t, ByOrderedAt, TabOrders.Field())
	assert.Equal(t, ByDeliveryDate, TabDeliveries.Field())
}

func TestEnrich_Fallbacks(t *testing.T) {
	orders := []*entity.Order{{ID: "1", UserID: "u1"}, {ID: "2", UserID: "ghost"}, {ID: "3", UserID: "u2"}}
	users := map[string]*entity.User{
		"u1": {UID: "u1", Name: "Ravi", Phone: "+919876543210"},
		"u2": {UID: "u2", Name: "Anita"},
	}

	rows := Enrich(orders, users)

	assert.Equal(t, "Ravi", rows[0].UserName)
	assert.Equal(t, "+919876543210", rows[0].UserPhone)
	assert.Equal(t, UnknownCustomer, rows[1].UserName)
	assert.Equal(t, NotAvailable, rows[1].UserPhone)
	assert.Equal(t, NotAvailable, rows[2].UserPhone)
	assert.Same(t, orders[0], rows[0].Order)
}
