package postgres

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db  *gorm.DB
	hub *realtime.Hub
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB, hub *realtime.Hub) repository.ProductRepository {
	return &productRepository{
		db:  db,
		hub: hub,
	}
}

// List retrieves the catalog ordered by name.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product and assigns its ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	repo.hub.Publish(constants.CollectionProducts)

	return nil
}

func (repo *productRepository) Update(ctx context.Context, id string, changes *entity.ProductChanges) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        changes.Name,
			"description": changes.Description,
			"price":       changes.Price,
			"quantity":    changes.Quantity,
			"unit":        string(changes.Unit),
			"image_url":   changes.ImageURL,
		})

	if result.Error != nil {
		if isMalformedID(result.Error) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	repo.hub.Publish(constants.CollectionProducts)

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isMalformedID(result.Error) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	repo.hub.Publish(constants.CollectionProducts)

	return nil
}

func (repo *productRepository) WatchProducts(ctx context.Context, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
	return realtime.Watch(ctx, repo.hub, constants.CollectionProducts, repo.List, listener), nil
}

// WatchProduct streams one product. Its deletion is delivered as
// repository.ErrProductNotFound and ends the watch.
func (repo *productRepository) WatchProduct(ctx context.Context, id string, listener repository.Listener[*entity.Product]) (repository.Unsubscribe, error) {
	load := func(ctx context.Context) (*entity.Product, error) {
		return repo.FindByID(ctx, id)
	}

	return realtime.Watch(ctx, repo.hub, constants.CollectionProducts, load, listener), nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Unit:        entity.Unit(data.Unit),
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Unit:        string(data.Unit),
		ImageURL:    data.ImageURL,
	}
}
