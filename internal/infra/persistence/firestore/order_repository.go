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

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates an order repository on the orders collection.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) orders() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionOrders)
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ref, result, err := r.orders().Add(ctx, newOrderDocument(order))
	if err != nil {
		return errors.Wrap(err, "failed to create order")
	}
	order.ID = ref.ID
	order.OrderedAt = result.UpdateTime

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.orders().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return decodeOrder(snap)
}

func (r *orderRepository) Find(ctx context.Context, query repository.OrderQuery) ([]*entity.Order, error) {
	snaps, err := r.query(query).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return decodeOrders(query)(snaps)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return r.update(ctx, id, fieldStatus, string(status))
}

func (r *orderRepository) UpdatePayment(ctx context.Context, id string, payment string) error {
	return r.update(ctx, id, fieldPayment, payment)
}

func (r *orderRepository) WatchOrders(ctx context.Context, query repository.OrderQuery, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
	return watchQuery(ctx, r.query(query), decodeOrders(query), listener), nil
}

func (r *orderRepository) update(ctx context.Context, id, field string, value any) error {
	if _, err := r.orders().Doc(id).Update(ctx, []firestore.Update{{Path: field, Value: value}}); err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrapf(err, "failed to update order %s", field)
	}

	return nil
}

// query pushes equality filters and the delivery range to Firestore. The
// ordered-at range and the ordering are applied after decoding, so no
// composite index beyond (userId, deliveryDate) is needed.
func (r *orderRepository) query(query repository.OrderQuery) firestore.Query {
	q := r.orders().Query
	if query.UserID != "" {
		q = q.Where(fieldUserID, "==", query.UserID)
	}
	if query.Payment != "" {
		q = q.Where(fieldPayment, "==", query.Payment)
	}
	if !query.Delivery.IsZero() {
		q = q.Where(fieldDeliveryDate, ">=", query.Delivery.From).
			Where(fieldDeliveryDate, "<=", query.Delivery.To)
	}

	return q
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var doc orderDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func decodeOrders(query repository.OrderQuery) func([]*firestore.DocumentSnapshot) ([]*entity.Order, error) {
	return func(snaps []*firestore.DocumentSnapshot) ([]*entity.Order, error) {
		orders := make([]*entity.Order, 0, len(snaps))
		for _, snap := range snaps {
			order, err := decodeOrder(snap)
			if err != nil {
				return nil, err
			}
			if query.Matches(order) {
				orders = append(orders, order)
			}
		}
		if query.NewestFirst {
			sortNewestFirst(orders)
		}

		return orders, nil
	}
}

func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderedAt.After(orders[j].OrderedAt)
	})
}
