package postgres

import (
	"context"
	"time"

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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db  *gorm.DB
	hub *realtime.Hub
	now func() time.Time
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB, hub *realtime.Hub) repository.OrderRepository {
	return &orderRepository{
		db:  db,
		hub: hub,
		now: time.Now,
	}
}

// Create persists the order. OrderedAt is assigned here, standing in for a
// server timestamp.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.ID = uuid.NewString()
	orderM.OrderedAt = repo.now().UTC()

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.OrderedAt = orderM.OrderedAt
	repo.hub.Publish(constants.CollectionOrders)

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) Find(ctx context.Context, query repository.OrderQuery) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.applyQuery(repo.db.WithContext(ctx), query).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return repo.update(ctx, id, "status", string(status))
}

func (repo *orderRepository) UpdatePayment(ctx context.Context, id string, payment string) error {
	return repo.update(ctx, id, "payment", payment)
}

func (repo *orderRepository) WatchOrders(ctx context.Context, query repository.OrderQuery, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
	load := func(ctx context.Context) ([]*entity.Order, error) {
		return repo.Find(ctx, query)
	}

	return realtime.Watch(ctx, repo.hub, constants.CollectionOrders, load, listener), nil
}

func (repo *orderRepository) update(ctx context.Context, id, column string, value string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		if isMalformedID(result.Error) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	repo.hub.Publish(constants.CollectionOrders)

	return nil
}

// applyQuery translates an OrderQuery into WHERE and ORDER BY clauses with
// the same semantics as OrderQuery.Matches.
func (repo *orderRepository) applyQuery(db *gorm.DB, query repository.OrderQuery) *gorm.DB {
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID)
	}
	if query.Payment != "" {
		db = db.Where("payment = ?", query.Payment)
	}
	if !query.Delivery.IsZero() {
		db = db.Where("delivery_date BETWEEN ? AND ?", query.Delivery.From, query.Delivery.To)
	}
	if !query.Ordered.IsZero() {
		db = db.Where("ordered_at BETWEEN ? AND ?", query.Ordered.From, query.Ordered.To)
	}
	if query.NewestFirst {
		db = db.Order("ordered_at DESC")
	}

	return db
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		ProductName:  data.ProductName,
		Price:        data.Price,
		Unit:         entity.Unit(data.Unit),
		Quantity:     data.Quantity,
		TotalPrice:   data.TotalPrice,
		DeliveryDate: data.DeliveryDate,
		OrderedAt:    data.OrderedAt,
		Status:       entity.OrderStatus(data.Status),
		Payment:      data.Payment,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		ProductName:  data.ProductName,
		Price:        data.Price,
		Unit:         string(data.Unit),
		Quantity:     data.Quantity,
		TotalPrice:   data.TotalPrice,
		DeliveryDate: data.DeliveryDate,
		OrderedAt:    data.OrderedAt,
		Status:       string(data.Status),
		Payment:      data.Payment,
	}
}
