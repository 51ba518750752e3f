package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/realtime"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "name", "description", "price", "quantity", "unit", "image_url", "created_at", "updated_at"}

func productRow(rows *sqlmock.Rows, id, name string) *sqlmock.Rows {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return rows.AddRow(id, name, "", 10.5, 4, "kg", "", now, now)
}

func TestProductRepository_FindByID_MalformedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, realtime.NewHub())

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnError(&pgconn.PgError{Code: invalidTextRepresentation})

	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, realtime.NewHub())

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, "p1", "Apple")
	productRow(rows, "p2", "Rice")
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY name`).WillReturnRows(rows)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, entity.UnitKilogram, products[0].Unit)
	assert.Equal(t, 4, products[1].Quantity)
}

func TestProductRepository_Update_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, realtime.NewHub())

	mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "p1", &entity.ProductChanges{Name: "Rice", Price: 1, Unit: entity.UnitKilogram})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_WatchProductsReloadsAfterDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, realtime.NewHub())
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY name`).
		WillReturnRows(productRow(productRow(sqlmock.NewRows(productColumns), "p1", "Apple"), "p2", "Rice"))
	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY name`).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), "p2", "Rice"))

	snapshots := make(chan []*entity.Product, 2)
	unsub, err := repo.WatchProducts(ctx, func(products []*entity.Product, err error) {
		assert.NoError(t, err)
		snapshots <- products
	})
	require.NoError(t, err)
	defer unsub()

	first := receive(t, snapshots)
	assert.Len(t, first, 2)

	require.NoError(t, repo.Delete(ctx, "p1"))

	second := receive(t, snapshots)
	require.Len(t, second, 1)
	assert.Equal(t, "p2", second[0].ID)
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, realtime.NewHub())

	mock.ExpectExec(`DELETE FROM "products"`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "p1"), repository.ErrProductNotFound)
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")

		var zero T

		return zero
	}
}
