package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/form"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// OrderHandler serves order taking for customers and order administration.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	loc     *time.Location
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		loc:     params.Config.Location(),
		logger:  params.Logger,
		now:     time.Now,
	}
}

// PlaceOrderRequest is the order sheet of the home screen.
type PlaceOrderRequest struct {
	ProductID    string    `json:"product_id"`
	Quantity     form.Text `json:"quantity"`
	DeliveryDate string    `json:"delivery_date"`
}

// CreateOrderRequest is the admin order form.
type CreateOrderRequest struct {
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	Quantity     form.Text `json:"quantity"`
	DeliveryDate string    `json:"delivery_date"`
	Payment      string    `json:"payment"`
}

// UpdateStatusRequest moves an order to another status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentRequest sets the payment state of an order.
type UpdatePaymentRequest struct {
	Payment string `json:"payment" validate:"required"`
}

// OrderListQuery holds the admin order list filters.
type OrderListQuery struct {
	Day     string `query:"day" json:"day"`
	Payment string `query:"payment" json:"payment"`
	Search  string `query:"search" json:"search"`
}

// MyOrdersResponse is the customer order history with its grand total.
type MyOrdersResponse struct {
	Orders     []*entity.Order `json:"orders"`
	GrandTotal float64         `json:"grand_total"`
}

// OrderListResponse is the admin order list with its grand total.
type OrderListResponse struct {
	Orders     []*entity.CustomerOrder `json:"orders"`
	GrandTotal float64                 `json:"grand_total"`
}

// PlaceOrder orders a product for the caller.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	uid, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	day, err := form.ParseDay(req.DeliveryDate, h.loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), uid, &usecase.PlaceOrderInput{
		ProductID:    req.ProductID,
		Quantity:     string(req.Quantity),
		DeliveryDate: day,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// ListMyOrders returns the caller's orders, optionally for one delivery ?day=.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	day, err := form.ParseDay(c.QueryParam("day"), h.loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), uid, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, MyOrdersResponse{Orders: orders, GrandTotal: view.GrandTotal(orders)})
}

// CreateOrder enters an order on behalf of a customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	day, err := form.ParseDay(req.DeliveryDate, h.loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		UserID:       req.UserID,
		ProductID:    req.ProductID,
		Quantity:     string(req.Quantity),
		DeliveryDate: day,
		Payment:      req.Payment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// ListOrders returns every order matching the filters.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, OrderListResponse{Orders: orders, GrandTotal: view.GrandTotal(orders)})
}

// ListCustomers returns the customers orders can be entered for.
func (h *OrderHandler) ListCustomers(c echo.Context) error {
	users, err := h.orderUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// UpdateStatus changes an order's status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdatePayment changes an order's payment state.
func (h *OrderHandler) UpdatePayment(c echo.Context) error {
	var req UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdatePayment(c.Request().Context(), c.Param("id"), req.Payment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// Dashboard returns today's counters and the orders of the selected ?tab=.
func (h *OrderHandler) Dashboard(c echo.Context) error {
	tab := view.ParseDashboardTab(c.QueryParam("tab"))

	out, err := h.orderUC.Dashboard(c.Request().Context(), tab, h.now().In(h.loc))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, out)
}

// bindFilter reads the order list filters.
func (h *OrderHandler) bindFilter(c echo.Context) (*usecase.OrderFilter, error) {
	var query OrderListQuery
	if err := c.Bind(&query); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid filter input")
	}

	return toFilter(query, h.loc)
}

func toFilter(query OrderListQuery, loc *time.Location) (*usecase.OrderFilter, error) {
	day, err := form.ParseDay(query.Day, loc)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderFilter{
		Day:            day,
		Payment:        query.Payment,
		CustomerSearch: query.Search,
	}, nil
}
