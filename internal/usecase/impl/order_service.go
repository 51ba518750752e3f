package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	notifier     *customerNotifier
	location     *time.Location
	legacyUnpaid bool
	logger       *slog.Logger

	now func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	ProductRepo   repository.ProductRepository
	UserRepo      repository.UserRepository
	DeviceRepo    repository.DeviceRepository
	Notifications service.NotificationService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		notifier:     newCustomerNotifier(params.DeviceRepo, params.Notifications, params.Logger),
		location:     params.Config.Location(),
		legacyUnpaid: params.Config.Orders.LegacyCustomerPaymentCasing,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder records a customer's order for delivery tomorrow or later.
func (srv *orderService) PlaceOrder(ctx context.Context, uid string, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, domainerrors.ErrProductNotSelected
	}

	quantity, ok := view.ParseQuantity(strings.TrimSpace(input.Quantity))
	if !ok || quantity <= 0 {
		return nil, domainerrors.ErrQuantityInvalid
	}

	now := srv.now().In(srv.location)
	deliveryDate := view.DefaultDeliveryDate(now)
	if input.DeliveryDate != nil {
		deliveryDate = input.DeliveryDate.In(srv.location)
	}
	if !view.IsDeliverable(deliveryDate, now) {
		return nil, domainerrors.ErrDeliveryDateInvalid
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	payment := entity.PaymentUnpaid
	if srv.legacyUnpaid {
		payment = entity.PaymentUnpaidLegacy
	}

	order := entity.NewOrderSnapshot(uid, product, quantity, deliveryDate, payment)
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID),
		slog.String("uid", uid),
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity),
	)

	return order, nil
}

// CreateOrder records an order on behalf of a customer. Any delivery day is accepted.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	userID := strings.TrimSpace(input.UserID)
	productID := strings.TrimSpace(input.ProductID)
	quantityText := strings.TrimSpace(input.Quantity)
	if userID == "" || productID == "" || quantityText == "" {
		return nil, domainerrors.ErrOrderFieldsMissing
	}

	quantity, ok := view.ParseQuantity(quantityText)
	if !ok || quantity <= 0 {
		return nil, domainerrors.ErrQuantityInvalid
	}

	payment := strings.TrimSpace(input.Payment)
	if payment == "" {
		payment = entity.PaymentUnpaid
	}
	if !entity.IsValidPayment(payment) {
		return nil, domainerrors.ErrPaymentInvalid
	}

	deliveryDate := view.DefaultDeliveryDate(srv.now().In(srv.location))
	if input.DeliveryDate != nil {
		deliveryDate = input.DeliveryDate.In(srv.location)
	}

	if _, err := srv.userRepo.FindByUID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrderSnapshot(userID, product, quantity, deliveryDate, payment)
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created for customer",
		slog.String("order_id", order.ID),
		slog.String("uid", userID),
		slog.String("product_id", product.ID),
	)

	return order, nil
}

// ListMyOrders returns a customer's orders.
func (srv *orderService) ListMyOrders(ctx context.Context, uid string, day *time.Time) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.Find(ctx, srv.myOrdersQuery(uid, day))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return view.SortNewestFirst(orders), nil
}

// ListOrders returns the filtered admin order list.
func (srv *orderService) ListOrders(ctx context.Context, filter *usecase.OrderFilter) ([]*entity.CustomerOrder, error) {
	orders, err := srv.orderRepo.Find(ctx, srv.filterQuery(filter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return srv.enrich(ctx, view.SortNewestFirst(orders), filter)
}

// ListCustomers returns every customer profile ordered by name.
func (srv *orderService) ListCustomers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return users, nil
}

// UpdateStatus moves an order to status and tells the customer.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrStatusInvalid
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, srv.mapOrderError(err, "failed to update order status")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.String("order_id", orderID), slog.String("status", string(status)))

	srv.notifyCustomer(ctx, order, service.Push{
		Title: "Order update",
		Body:  fmt.Sprintf("Your order of %s is now %s.", order.ProductName, view.StatusBadge(status).Text),
		Data: map[string]string{
			service.PushKeyKind:    service.PushKindOrderStatus,
			service.PushKeyOrderID: order.ID,
			service.PushKeyStatus:  string(status),
		},
	})

	return order, nil
}

// UpdatePayment overwrites the payment value of an order and tells the customer.
func (srv *orderService) UpdatePayment(ctx context.Context, orderID string, payment string) (*entity.Order, error) {
	if !entity.IsValidPayment(payment) {
		return nil, domainerrors.ErrPaymentInvalid
	}

	if err := srv.orderRepo.UpdatePayment(ctx, orderID, payment); err != nil {
		return nil, srv.mapOrderError(err, "failed to update order payment")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order payment updated", slog.String("order_id", orderID), slog.String("payment", payment))

	srv.notifyCustomer(ctx, order, service.Push{
		Title: "Payment update",
		Body:  fmt.Sprintf("Your order of %s is marked %s.", order.ProductName, view.PaymentBadge(payment).Text),
		Data: map[string]string{
			service.PushKeyKind:    service.PushKindOrderPayment,
			service.PushKeyOrderID: order.ID,
			service.PushKeyPayment: payment,
		},
	})

	return order, nil
}

// Dashboard computes today's counters and the selected tab's order list.
func (srv *orderService) Dashboard(ctx context.Context, tab view.DashboardTab, now time.Time) (*usecase.DashboardOutput, error) {
	orders, err := srv.orderRepo.Find(ctx, repository.OrderQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return srv.dashboard(ctx, orders, tab, now)
}

// WatchMyOrders streams a customer's orders, newest first.
func (srv *orderService) WatchMyOrders(ctx context.Context, uid string, day *time.Time, listener repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
	unsub, err := srv.orderRepo.WatchOrders(ctx, srv.myOrdersQuery(uid, day), func(orders []*entity.Order, err error) {
		if err != nil {
			listener(nil, err)

			return
		}
		listener(view.SortNewestFirst(orders), nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch orders")
	}

	return unsub, nil
}

// WatchOrders streams the filtered admin order list.
func (srv *orderService) WatchOrders(ctx context.Context, filter *usecase.OrderFilter, listener repository.Listener[[]*entity.CustomerOrder]) (repository.Unsubscribe, error) {
	unsub, err := srv.orderRepo.WatchOrders(ctx, srv.filterQuery(filter), func(orders []*entity.Order, err error) {
		if err != nil {
			listener(nil, err)

			return
		}
		listener(srv.enrich(ctx, view.SortNewestFirst(orders), filter))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch orders")
	}

	return unsub, nil
}

// WatchDashboard streams the dashboard, recomputed on every order change.
func (srv *orderService) WatchDashboard(ctx context.Context, tab view.DashboardTab, now time.Time, listener repository.Listener[*usecase.DashboardOutput]) (repository.Unsubscribe, error) {
	unsub, err := srv.orderRepo.WatchOrders(ctx, repository.OrderQuery{}, func(orders []*entity.Order, err error) {
		if err != nil {
			listener(nil, err)

			return
		}
		listener(srv.dashboard(ctx, orders, tab, now))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch orders")
	}

	return unsub, nil
}

// WatchCustomers streams the customers an administrator can order for.
func (srv *orderService) WatchCustomers(ctx context.Context, listener repository.Listener[[]*entity.User]) (repository.Unsubscribe, error) {
	unsub, err := srv.userRepo.WatchUsers(ctx, entity.RoleUser, listener)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch customers")
	}

	return unsub, nil
}

func (srv *orderService) dashboard(ctx context.Context, orders []*entity.Order, tab view.DashboardTab, now time.Time) (*usecase.DashboardOutput, error) {
	now = now.In(srv.location)
	selected := view.SortNewestFirst(view.OrdersForDay(orders, now, tab.Field()))

	enriched, err := srv.enrich(ctx, selected, nil)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardOutput{
		Stats:  view.DashboardStats(orders, now),
		Tab:    tab,
		Orders: enriched,
	}, nil
}

// enrich joins orders with customer details and applies the customer-name
// search of filter, if any.
func (srv *orderService) enrich(ctx context.Context, orders []*entity.Order, filter *usecase.OrderFilter) ([]*entity.CustomerOrder, error) {
	users := map[string]*entity.User{}
	if ids := userIDs(orders); len(ids) > 0 {
		found, err := srv.userRepo.FindByUIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find customers")
		}
		users = found
	}

	rows := view.Enrich(orders, users)
	if filter != nil {
		rows = view.FilterOrdersByCustomer(rows, strings.TrimSpace(filter.CustomerSearch))
	}

	return rows, nil
}

func (srv *orderService) myOrdersQuery(uid string, day *time.Time) repository.OrderQuery {
	return repository.OrderQuery{
		UserID:      uid,
		Delivery:    deliveryRange(day, srv.location),
		NewestFirst: day == nil,
	}
}

func (srv *orderService) filterQuery(filter *usecase.OrderFilter) repository.OrderQuery {
	query := repository.OrderQuery{NewestFirst: true}
	if filter == nil {
		return query
	}
	query.Delivery = deliveryRange(filter.Day, srv.location)
	query.Payment = strings.TrimSpace(filter.Payment)

	return query
}

func (srv *orderService) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *orderService) findOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapOrderError(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) mapOrderError(err error, message string) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, message)
}

// notifyCustomer pushes to the order's customer. Push failures never fail the update.
func (srv *orderService) notifyCustomer(ctx context.Context, order *entity.Order, push service.Push) {
	result, err := srv.notifier.Notify(ctx, []string{order.UserID}, push)
	if err != nil {
		srv.log(ctx).Warn("Failed to notify customer", slog.String("order_id", order.ID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Debug("Customer notified",
		slog.String("order_id", order.ID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
}
