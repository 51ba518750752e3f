package firestore

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestUserDocument_RoundTripKeepsFields(t *testing.T) {
	user := &entity.User{UID: "uid-1", Name: "Asha", Phone: "+919876543210", Address: "12 MG Road", Role: entity.RoleAdmin}

	got := newUserDocument(user).toEntity("uid-1")
	assert.Equal(t, user, got)
}

func TestUserDocument_FallsBackToDocumentID(t *testing.T) {
	doc := &userDocument{Name: "Ravi", Role: "superuser"}

	got := doc.toEntity("doc-id")
	assert.Equal(t, "doc-id", got.UID)
	assert.Equal(t, entity.RoleUser, got.Role)
}

func TestOrderDocument_ToEntity(t *testing.T) {
	delivery := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	doc := &orderDocument{
		UserID:       "uid-1",
		ProductID:    "p1",
		ProductName:  "Rice",
		Price:        50,
		Unit:         "kg",
		Quantity:     2,
		TotalPrice:   100,
		DeliveryDate: delivery,
		Status:       "processing",
		Payment:      "Unpaid",
	}

	order := doc.toEntity("o1")
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, entity.UnitKilogram, order.Unit)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, entity.PaymentUnpaidLegacy, order.Payment)
	assert.Equal(t, 2, order.Quantity)
	assert.True(t, order.DeliveryDate.Equal(delivery))
}

func TestProductDocument_ToEntity(t *testing.T) {
	product := &entity.Product{Name: "Eggs", Price: 6.5, Quantity: 30, Unit: entity.UnitPieces, ImageURL: "https://img/eggs.png"}

	got := newProductDocument(product).toEntity("p9")
	assert.Equal(t, "p9", got.ID)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, 30, got.Quantity)
	assert.Equal(t, product.ImageURL, got.ImageURL)
}

func TestSortNewestFirst(t *testing.T) {
	older := &entity.Order{ID: "a", OrderedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	newer := &entity.Order{ID: "b", OrderedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	orders := []*entity.Order{older, newer}

	sortNewestFirst(orders)
	assert.Equal(t, []*entity.Order{newer, older}, orders)
}

func TestChunk(t *testing.T) {
	assert.Nil(t, chunk([]string{}, 30))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2}}, chunk([]int{1, 2}, 30))
}
