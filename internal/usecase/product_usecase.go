package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductInput defines the product editor form. Nil numbers were left blank.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Unit        string   `json:"unit"`
	ImageURL    string   `json:"image_url"`
}

// ProductUsecase defines catalog browsing and administration.
type ProductUsecase interface {
	// ListProducts returns the catalog ordered by name, narrowed by a case-insensitive name search.
	ListProducts(ctx context.Context, search string) ([]*entity.Product, error)

	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	UpdateProduct(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Existing orders keep their copied product details.
	DeleteProduct(ctx context.Context, id string) error

	WatchProducts(ctx context.Context, search string, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error)

	WatchProduct(ctx context.Context, id string, listener repository.Listener[*entity.Product]) (repository.Unsubscribe, error)
}
