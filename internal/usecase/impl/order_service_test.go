package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service       *orderService
	orderRepo     *mockRepo.MockOrderRepository
	productRepo   *mockRepo.MockProductRepository
	userRepo      *mockRepo.MockUserRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	notifications *mockSvc.MockNotificationService
	loc           *time.Location
	now           time.Time
}

func createTestOrderService(t *testing.T, legacyCasing bool) orderServiceFixtures {
	loc := testLocation(t)
	fx := orderServiceFixtures{
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		deviceRepo:    mockRepo.NewMockDeviceRepository(t),
		notifications: mockSvc.NewMockNotificationService(t),
		loc:           loc,
		now:           time.Date(2024, 3, 10, 18, 30, 0, 0, loc),
	}

	cfg := newTestConfig()
	cfg.Orders.LegacyCustomerPaymentCasing = legacyCasing

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:     fx.orderRepo,
		ProductRepo:   fx.productRepo,
		UserRepo:      fx.userRepo,
		DeviceRepo:    fx.deviceRepo,
		Notifications: fx.notifications,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

var testProduct = &entity.Product{ID: "p1", Name: "Basmati Rice", Price: 19.99, Unit: entity.UnitKilogram}

func TestOrderService_PlaceOrder_ProductNotSelected(t *testing.T) {
	fx := createTestOrderService(t, false)

	for _, id := range []string{"", "   "} {
		_, err := fx.service.PlaceOrder(context.Background(), "uid-1", &usecase.PlaceOrderInput{ProductID: id, Quantity: "2"})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotSelected)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t, false)

	for _, q := range []string{"", "0", "-1", "2.5", "abc"} {
		_, err := fx.service.PlaceOrder(context.Background(), "uid-1", &usecase.PlaceOrderInput{ProductID: "p1", Quantity: q})
		assert.ErrorIs(t, err, domainerrors.ErrQuantityInvalid, q)
	}
}

func TestOrderService_PlaceOrder_DeliveryDateMustBeTomorrowOrLater(t *testing.T) {
	fx := createTestOrderService(t, false)

	today := time.Date(2024, 3, 10, 23, 0, 0, 0, fx.loc)
	_, err := fx.service.PlaceOrder(context.Background(), "uid-1", &usecase.PlaceOrderInput{
		ProductID:    "p1",
		Quantity:     "2",
		DeliveryDate: &today,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryDateInvalid)
}

func TestOrderService_PlaceOrder_SnapshotsProduct(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(testProduct, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.UserID == "uid-1" &&
				o.ProductName == "Basmati Rice" &&
				o.Price == 19.99 &&
				o.Unit == entity.UnitKilogram &&
				o.Quantity == 3 &&
				o.TotalPrice == 59.97 &&
				o.Status == entity.OrderStatusProcessing &&
				o.Payment == entity.PaymentUnpaid &&
				o.DeliveryDate.Equal(fx.now.AddDate(0, 0, 1))
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, "uid-1", &usecase.PlaceOrderInput{ProductID: "p1", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, 59.97, order.TotalPrice)
}

func TestOrderService_PlaceOrder_LegacyPaymentCasing(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(testProduct, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Payment == entity.PaymentUnpaidLegacy })).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, "uid-1", &usecase.PlaceOrderInput{ProductID: "p1", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Unpaid", order.Payment)
	assert.Equal(t, "Unpaid", view.PaymentBadge(order.Payment).Text)
}

func TestOrderService_PlaceOrder_ProductNotFound(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.PlaceOrder(ctx, "uid-1", &usecase.PlaceOrderInput{ProductID: "gone", Quantity: "1"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_CreateOrder_RequiredFields(t *testing.T) {
	fx := createTestOrderService(t, false)

	cases := []*usecase.CreateOrderInput{
		{ProductID: "p1", Quantity: "1"},
		{UserID: "uid-1", Quantity: "1"},
		{UserID: "uid-1", ProductID: "p1"},
	}
	for _, input := range cases {
		_, err := fx.service.CreateOrder(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrOrderFieldsMissing)
	}
}

func TestOrderService_CreateOrder_AnyDeliveryDate(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	yesterday := fx.now.AddDate(0, 0, -1)
	fx.userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.User{UID: "uid-1"}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(testProduct, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.DeliveryDate.Equal(yesterday) && o.Payment == entity.PaymentPaid
		})).
		Return(nil)

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:       "uid-1",
		ProductID:    "p1",
		Quantity:     "2",
		DeliveryDate: &yesterday,
		Payment:      "paid",
	})
	assert.NoError(t, err)
}

func TestOrderService_CreateOrder_InvalidPayment(t *testing.T) {
	fx := createTestOrderService(t, false)

	_, err := fx.service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID:    "uid-1",
		ProductID: "p1",
		Quantity:  "2",
		Payment:   "Unpaid",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentInvalid)
}

func TestOrderService_ListOrders_EnrichesAndSearches(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	day := time.Date(2024, 3, 11, 0, 0, 0, 0, fx.loc)
	orders := []*entity.Order{
		{ID: "o1", UserID: "u1", OrderedAt: fx.now.Add(-2 * time.Hour)},
		{ID: "o2", UserID: "u2", OrderedAt: fx.now.Add(-1 * time.Hour)},
		{ID: "o3", UserID: "ghost", OrderedAt: fx.now},
	}
	fx.orderRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(q repository.OrderQuery) bool {
			return q.Payment == "paid" && q.Delivery.From.Equal(day) && q.UserID == ""
		})).
		Return(orders, nil).
		Once()
	fx.userRepo.EXPECT().
		FindByUIDs(ctx, mock.MatchedBy(func(ids []string) bool { return len(ids) == 3 })).
		Return(map[string]*entity.User{
			"u1": {UID: "u1", Name: "Asha Rao", Phone: "+911111111111"},
			"u2": {UID: "u2", Name: "Ravi"},
		}, nil).
		Once()

	rows, err := fx.service.ListOrders(ctx, &usecase.OrderFilter{Day: &day, Payment: "paid"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "o3", rows[0].ID)
	assert.Equal(t, view.UnknownCustomer, rows[0].UserName)
	assert.Equal(t, view.NotAvailable, rows[1].UserPhone)

	fx.orderRepo.EXPECT().Find(ctx, mock.Anything).Return(orders, nil).Once()
	fx.userRepo.EXPECT().FindByUIDs(ctx, mock.Anything).Return(map[string]*entity.User{
		"u1": {UID: "u1", Name: "Asha Rao"},
	}, nil).Once()

	rows, err = fx.service.ListOrders(ctx, &usecase.OrderFilter{CustomerSearch: "asha"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "o1", rows[0].ID)
}

func TestOrderService_UpdateStatus_NotifiesCustomer(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", UserID: "u1", ProductName: "Basmati Rice", Status: entity.OrderStatusShipped}
	fx.orderRepo.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusShipped).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(order, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"u1"}).Return([]*entity.UserDevice{
		{ID: "d1", UserID: "u1", FCMToken: "good", IsActive: true},
		{ID: "d2", UserID: "u1", FCMToken: "stale", IsActive: true},
	}, nil)
	fx.notifications.EXPECT().
		Multicast(ctx, []string{"good", "stale"}, mock.MatchedBy(func(push service.Push) bool {
			return push.Title == "Order update" &&
				push.Body == "Your order of Basmati Rice is now Shipped." &&
				push.Data[service.PushKeyStatus] == string(entity.OrderStatusShipped)
		})).
		Return(&service.MulticastResult{Sent: 1, Failed: 1, InvalidTokens: []string{"stale"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(nil)

	got, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)
}

func TestOrderService_UpdateStatus_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.orderRepo.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusDelivered).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", UserID: "u1"}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"u1"}).Return(nil, errors.New("db down"))

	_, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusDelivered)
	assert.NoError(t, err)
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	fx := createTestOrderService(t, false)

	_, err := fx.service.UpdateStatus(context.Background(), "o1", entity.OrderStatus("lost"))
	assert.ErrorIs(t, err, domainerrors.ErrStatusInvalid)
}

func TestOrderService_UpdatePayment_NotFound(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.orderRepo.EXPECT().UpdatePayment(ctx, "o1", "paid").Return(repository.ErrOrderNotFound)

	_, err := fx.service.UpdatePayment(ctx, "o1", "paid")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Dashboard(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	today := fx.now
	orders := []*entity.Order{
		{ID: "placed-today", UserID: "u1", OrderedAt: today.Add(-time.Hour), DeliveryDate: today.AddDate(0, 0, 1)},
		{ID: "due-today", UserID: "u1", OrderedAt: today.AddDate(0, 0, -2), DeliveryDate: today},
		{ID: "old", UserID: "u1", OrderedAt: today.AddDate(0, 0, -5), DeliveryDate: today.AddDate(0, 0, -4)},
	}
	fx.orderRepo.EXPECT().Find(ctx, repository.OrderQuery{}).Return(orders, nil).Times(2)
	fx.userRepo.EXPECT().FindByUIDs(ctx, []string{"u1"}).Return(map[string]*entity.User{"u1": {Name: "Asha"}}, nil).Times(2)

	out, err := fx.service.Dashboard(ctx, view.TabDeliveries, today)
	require.NoError(t, err)
	assert.Equal(t, view.Stats{TotalOrders: 3, TodaysOrders: 1, TodaysDeliveries: 1}, out.Stats)
	require.Len(t, out.Orders, 1)
	assert.Equal(t, "due-today", out.Orders[0].ID)

	out, err = fx.service.Dashboard(ctx, view.TabOrders, today)
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	assert.Equal(t, "placed-today", out.Orders[0].ID)
	assert.Equal(t, "Asha", out.Orders[0].UserName)
}

func TestOrderService_WatchMyOrders_SortsNewestFirst(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	var push repository.Listener[[]*entity.Order]
	fx.orderRepo.EXPECT().
		WatchOrders(ctx, repository.OrderQuery{UserID: "u1", NewestFirst: true}, mock.Anything).
		Run(func(_ context.Context, _ repository.OrderQuery, listener repository.Listener[[]*entity.Order]) {
			push = listener
		}).
		Return(func() {}, nil)

	var got []*entity.Order
	_, err := fx.service.WatchMyOrders(ctx, "u1", nil, func(orders []*entity.Order, err error) {
		got = orders
	})
	require.NoError(t, err)

	push([]*entity.Order{
		{ID: "older", OrderedAt: fx.now.Add(-time.Hour)},
		{ID: "newer", OrderedAt: fx.now},
	}, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].ID)
}
