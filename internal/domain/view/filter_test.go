package view

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	return loc
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("spring water", "Ring"))
	assert.True(t, MatchesSearch("Milk", ""))
	assert.True(t, MatchesSearch("Basmati Rice", "RICE"))
	assert.False(t, MatchesSearch("Milk", "bread"))
}

func TestDayRange_InclusiveBoundaries(t *testing.T) {
	loc := kolkata(t)
	day := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)
	r := DayRange(day, nil)

	start := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), loc)

	assert.Equal(t, start, r.From)
	assert.Equal(t, end, r.To)
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(start.Add(-time.Millisecond)))
	assert.False(t, r.Contains(end.Add(time.Millisecond)))
}

func TestDayRange_ConvertsToLocation(t *testing.T) {
	loc := kolkata(t)
	// 20:00 UTC is already the next day in India.
	utc := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	r := DayRange(utc, loc)

	assert.Equal(t, 16, r.From.Day())
	assert.Equal(t, loc, r.From.Location())
}

func TestDeliveryDates(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2024, 3, 15, 22, 0, 0, 0, loc)

	def := DefaultDeliveryDate(now)
	assert.Equal(t, time.Date(2024, 3, 16, 22, 0, 0, 0, loc), def)
	assert.True(t, IsDeliverable(def, now))
	assert.True(t, IsDeliverable(time.Date(2024, 3, 16, 0, 0, 0, 0, loc), now))
	assert.False(t, IsDeliverable(time.Date(2024, 3, 15, 23, 59, 0, 0, loc), now))
	assert.False(t, IsDeliverable(now, now))
}

func TestFilterProducts_PreservesOrderAndInput(t *testing.T) {
	products := []*entity.Product{
		{ID: "1", Name: "Spring Water"},
		{ID: "2", Name: "Milk"},
		{ID: "3", Name: "Sparkling water"},
	}

	got := FilterProducts(products, "WATER")

	assert.Equal(t, []string{"1", "3"}, []string{got[0].ID, got[1].ID})
	assert.Len(t, products, 3)
	assert.Len(t, FilterProducts(products, ""), 3)
}

func TestSortProductsByName(t *testing.T) {
	products := []*entity.Product{{Name: "Milk"}, {Name: "Eggs"}, {Name: "Bread"}}

	sorted := SortProductsByName(products)

	assert.Equal(t, "Bread", sorted[0].Name)
	assert.Equal(t, "Milk", sorted[2].Name)
	assert.Equal(t, "Milk", products[0].Name)
}

func TestOrdersForDay(t *testing.T) {
	loc := kolkata(t)
	day := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)
	orders := []*entity.Order{
		{ID: "a", DeliveryDate: time.Date(2024, 3, 15, 0, 0, 0, 0, loc), OrderedAt: time.Date(2024, 3, 14, 8, 0, 0, 0, loc)},
		{ID: "b", DeliveryDate: time.Date(2024, 3, 16, 0, 0, 0, 0, loc), OrderedAt: time.Date(2024, 3, 15, 8, 0, 0, 0, loc)},
		{ID: "c", DeliveryDate: time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), loc)},
	}

	byDelivery := OrdersForDay(orders, day, ByDeliveryDate)
	byOrdered := OrdersForDay(orders, day, ByOrderedAt)

	assert.Len(t, byDelivery, 2)
	assert.Equal(t, "a", byDelivery[0].ID)
	assert.Equal(t, "c", byDelivery[1].ID)
	assert.Len(t, byOrdered, 1)
	assert.Equal(t, "b", byOrdered[0].ID)
	assert.Empty(t, OrdersForDay(orders, day.AddDate(0, 0, 5), ByDeliveryDate))
}

func TestFilterOrdersByCustomer(t *testing.T) {
	orders := []*entity.CustomerOrder{
		{Order: &entity.Order{ID: "1"}, UserName: "Ravi Kumar"},
		{Order: &entity.Order{ID: "2"}, UserName: "Anita"},
	}

	got := FilterOrdersByCustomer(orders, "kum")

	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{ID: "old", OrderedAt: base},
		{ID: "new", OrderedAt: base.Add(time.Hour)},
	}

	sorted := SortNewestFirst(orders)

	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "old", orders[0].ID)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2024", FormatDate(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "Home, MG Road, Bengaluru, 560001, India",
		JoinAddress("Home", "MG Road", "Bengaluru", "560001", "India"))
	assert.Equal(t, "Bengaluru, India", JoinAddress("", " ", "Bengaluru", "", "India"))
	assert.Empty(t, JoinAddress("", ""))
}
