package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations of the product catalog.
type ProductRepository interface {
	// List retrieves every product ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product and assigns its ID and CreatedAt.
	Create(ctx context.Context, product *entity.Product) error

	// Update writes the editable fields of an existing product and stamps UpdatedAt.
	Update(ctx context.Context, id string, changes *entity.ProductChanges) error

	// Delete removes a product. Orders referencing it are left untouched.
	Delete(ctx context.Context, id string) error

	// WatchProducts streams the catalog ordered by name.
	WatchProducts(ctx context.Context, listener Listener[[]*entity.Product]) (Unsubscribe, error)

	// WatchProduct streams a single product. A deleted product is delivered as ErrProductNotFound.
	WatchProduct(ctx context.Context, id string, listener Listener[*entity.Product]) (Unsubscribe, error)
}
