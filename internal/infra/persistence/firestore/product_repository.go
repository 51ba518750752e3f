package firestore

import (
	"context"
	"sort"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a product repository on the products collection.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) products() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionProducts)
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	snaps, err := r.products().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return decodeProducts(snaps)
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.products().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return decodeProduct(snap)
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ref, result, err := r.products().Add(ctx, newProductDocument(product))
	if err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	product.ID = ref.ID
	product.CreatedAt = result.UpdateTime
	product.UpdatedAt = result.UpdateTime

	return nil
}

func (r *productRepository) Update(ctx context.Context, id string, changes *entity.ProductChanges) error {
	_, err := r.products().Doc(id).Update(ctx, []firestore.Update{
		{Path: fieldName, Value: changes.Name},
		{Path: fieldDescription, Value: changes.Description},
		{Path: fieldPrice, Value: changes.Price},
		{Path: fieldQuantity, Value: int64(changes.Quantity)},
		{Path: fieldUnit, Value: string(changes.Unit)},
		{Path: fieldImageURL, Value: changes.ImageURL},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.products().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (r *productRepository) WatchProducts(ctx context.Context, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
	return watchQuery(ctx, r.products().Query, decodeProducts, listener), nil
}

func (r *productRepository) WatchProduct(ctx context.Context, id string, listener repository.Listener[*entity.Product]) (repository.Unsubscribe, error) {
	return watchDocument(ctx, r.products().Doc(id), decodeProduct, repository.ErrProductNotFound, listener), nil
}

func decodeProduct(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var doc productDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// decodeProducts returns the products sorted by name.
func decodeProducts(snaps []*firestore.DocumentSnapshot) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		product, err := decodeProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	return products, nil
}
