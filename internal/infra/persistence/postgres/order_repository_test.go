package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/realtime"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "user_id", "product_id", "product_name", "price", "unit", "quantity",
	"total_price", "delivery_date", "ordered_at", "status", "payment",
}

func TestOrderRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, realtime.NewHub()).(*orderRepository)
	orderedAt := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return orderedAt }

	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))

	order := &entity.Order{UserID: "u1", ProductID: "p1", ProductName: "Rice", Quantity: 2, Status: entity.OrderStatusProcessing, Payment: entity.PaymentUnpaid}
	require.NoError(t, repo.Create(context.Background(), order))
	assert.NotEmpty(t, order.ID)
	assert.True(t, order.OrderedAt.Equal(orderedAt))
}

func TestOrderRepository_FindTranslatesQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, realtime.NewHub())

	from := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)
	delivery := from.Add(6 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 AND payment = \$2 AND \(?delivery_date BETWEEN \$3 AND \$4\)? ORDER BY ordered_at DESC`).
		WithArgs("u1", "paid", from, to).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow("o1", "u1", "p1", "Rice", 50.0, "kg", 2, 100.0, delivery, from, "shipped", "paid"))

	orders, err := repo.Find(context.Background(), repository.OrderQuery{
		UserID:      "u1",
		Payment:     entity.PaymentPaid,
		Delivery:    entity.TimeRange{From: from, To: to},
		NewestFirst: true,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusShipped, orders[0].Status)
	assert.Equal(t, 100.0, orders[0].TotalPrice)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, realtime.NewHub())

	mock.ExpectExec(`UPDATE "orders" SET "status"=\$1 WHERE id = \$2`).
		WithArgs("delivered", "o1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "o1", entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
