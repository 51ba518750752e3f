package view

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
)

// DateLayout is the day format used on screens and exported documents.
const DateLayout = "02 Jan 2006"

// FormatDate renders the calendar day of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MatchesSearch reports whether name contains query, ignoring case.
// An empty query matches everything.
func MatchesSearch(name, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// DayRange returns the calendar day containing t in loc, from 00:00:00.000
// to 23:59:59.999 inclusive. A nil loc uses t's own location.
func DayRange(t time.Time, loc *time.Location) entity.TimeRange {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()

	return entity.TimeRange{
		From: time.Date(y, m, d, 0, 0, 0, 0, t.Location()),
		To:   time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location()),
	}
}

// InDay reports whether t falls on the calendar day of day.
func InDay(t, day time.Time) bool {
	return DayRange(day, nil).Contains(t)
}

// DefaultDeliveryDate is the delivery date preselected on the order form:
// the same clock time tomorrow.
func DefaultDeliveryDate(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}

// IsDeliverable reports whether a customer may request delivery on date,
// which must fall on tomorrow or later.
func IsDeliverable(date, now time.Time) bool {
	tomorrow := DayRange(now.AddDate(0, 0, 1), nil).From

	return !date.Before(tomorrow)
}

// FilterProducts keeps the products whose name matches query, preserving order.
func FilterProducts(products []*entity.Product, query string) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if MatchesSearch(p.Name, query) {
			out = append(out, p)
		}
	}

	return out
}

// SortProductsByName returns a copy of products ordered by name.
func SortProductsByName(products []*entity.Product) []*entity.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b *entity.Product) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// FilterOrdersByCustomer keeps the orders whose customer name matches query.
func FilterOrdersByCustomer(orders []*entity.CustomerOrder, query string) []*entity.CustomerOrder {
	out := make([]*entity.CustomerOrder, 0, len(orders))
	for _, o := range orders {
		if MatchesSearch(o.UserName, query) {
			out = append(out, o)
		}
	}

	return out
}

// DateField selects which order timestamp a day filter applies to.
type DateField int

const (
	// ByDeliveryDate buckets orders by their delivery day.
	ByDeliveryDate DateField = iota
	// ByOrderedAt buckets orders by the day they were placed.
	ByOrderedAt
)

func (f DateField) of(o *entity.Order) time.Time {
	if f == ByOrderedAt {
		return o.OrderedAt
	}

	return o.DeliveryDate
}

// OrdersForDay keeps the orders whose field falls on the calendar day of day.
func OrdersForDay(orders []*entity.Order, day time.Time, field DateField) []*entity.Order {
	r := DayRange(day, nil)
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if r.Contains(field.of(o)) {
			out = append(out, o)
		}
	}

	return out
}

// SortNewestFirst returns a copy of orders ordered by OrderedAt descending.
func SortNewestFirst(orders []*entity.Order) []*entity.Order {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b *entity.Order) int {
		return b.OrderedAt.Compare(a.OrderedAt)
	})

	return out
}
