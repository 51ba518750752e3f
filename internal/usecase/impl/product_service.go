package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog ordered by name and narrowed by search.
func (srv *productService) ListProducts(ctx context.Context, search string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return view.FilterProducts(view.SortProductsByName(products), strings.TrimSpace(search)), nil
}

// GetProduct retrieves a single product.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct validates the editor form and adds a product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	changes, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        changes.Name,
		Description: changes.Description,
		Price:       changes.Price,
		Quantity:    changes.Quantity,
		Unit:        changes.Unit,
		ImageURL:    changes.ImageURL,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct validates the editor form and overwrites a product's editable fields.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) (*entity.Product, error) {
	changes, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, id, changes); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", id))

	return srv.GetProduct(ctx, id)
}

// DeleteProduct removes a product. Orders keep their copied product details.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id))

	return nil
}

// WatchProducts streams the catalog ordered by name and narrowed by search.
func (srv *productService) WatchProducts(ctx context.Context, search string, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
	search = strings.TrimSpace(search)

	unsub, err := srv.productRepo.WatchProducts(ctx, func(products []*entity.Product, err error) {
		if err != nil {
			listener(nil, err)

			return
		}
		listener(view.FilterProducts(view.SortProductsByName(products), search), nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch products")
	}

	return unsub, nil
}

// WatchProduct streams a single product for the editor.
func (srv *productService) WatchProduct(ctx context.Context, id string, listener repository.Listener[*entity.Product]) (repository.Unsubscribe, error) {
	unsub, err := srv.productRepo.WatchProduct(ctx, id, func(product *entity.Product, err error) {
		if errors.Is(err, repository.ErrProductNotFound) {
			err = domainerrors.ErrProductNotFound
		}
		listener(product, err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch product")
	}

	return unsub, nil
}

// validateProductInput rejects forms with a blank required field before any
// write, then checks the values themselves.
func validateProductInput(input *usecase.ProductInput) (*entity.ProductChanges, error) {
	name := strings.TrimSpace(input.Name)
	unit := entity.Unit(strings.TrimSpace(input.Unit))
	if name == "" || input.Price == nil || unit == "" || input.Quantity == nil {
		return nil, domainerrors.ErrProductFieldsMissing
	}
	if *input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}
	if *input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	if !unit.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit must be kg or pcs")
	}

	return &entity.ProductChanges{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       *input.Price,
		Quantity:    *input.Quantity,
		Unit:        unit,
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}, nil
}
