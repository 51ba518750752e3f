package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the emulator named by FIRESTORE_EMULATOR_HOST.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "storefront-test-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestProductRepository_Emulator(t *testing.T) {
	repo := NewProductRepository(newEmulatorClient(t))
	ctx := context.Background()

	product := &entity.Product{Name: "Rice", Price: 55, Quantity: 10, Unit: entity.UnitKilogram}
	require.NoError(t, repo.Create(ctx, product))
	require.NotEmpty(t, product.ID)

	updates := make(chan *entity.Product, 4)
	errs := make(chan error, 1)
	unsub, err := repo.WatchProduct(ctx, product.ID, func(p *entity.Product, err error) {
		if err != nil {
			errs <- err

			return
		}
		updates <- p
	})
	require.NoError(t, err)
	defer unsub()

	first := <-updates
	assert.Equal(t, "Rice", first.Name)

	require.NoError(t, repo.Update(ctx, product.ID, &entity.ProductChanges{Name: "Basmati", Price: 80, Quantity: 5, Unit: entity.UnitKilogram}))
	assert.Equal(t, "Basmati", (<-updates).Name)

	require.NoError(t, repo.Delete(ctx, product.ID))
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	case <-time.After(5 * time.Second):
		t.Fatal("deletion was not delivered")
	}

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)
}

func TestOrderRepository_Emulator(t *testing.T) {
	repo := NewOrderRepository(newEmulatorClient(t))
	ctx := context.Background()

	day := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	for _, payment := range []string{entity.PaymentPaid, entity.PaymentUnpaid} {
		require.NoError(t, repo.Create(ctx, &entity.Order{UserID: "uid-1", ProductName: "Rice", DeliveryDate: day, Status: entity.OrderStatusProcessing, Payment: payment}))
	}

	orders, err := repo.Find(ctx, repository.OrderQuery{
		UserID:   "uid-1",
		Delivery: entity.TimeRange{From: day, To: day.Add(24*time.Hour - time.Nanosecond)},
		Payment:  entity.PaymentPaid,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.NoError(t, repo.UpdateStatus(ctx, orders[0].ID, entity.OrderStatusShipped))
	got, err := repo.FindByID(ctx, orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)

	assert.ErrorIs(t, repo.UpdatePayment(ctx, "missing", entity.PaymentPaid), repository.ErrOrderNotFound)
}
