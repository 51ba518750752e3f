// Package live serves the client screens over WebSocket. Each connection
// mounts a view-state machine, keeps the screen's subscriptions in a scope
// and pushes a state frame on every transition.
package live

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/navigation"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Profile  usecase.ProfileUsecase
	Products usecase.ProductUsecase
	Orders   usecase.OrderUsecase
	Exports  usecase.ExportUsecase
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
}

// Handler upgrades live screen requests.
type Handler struct {
	auth     usecase.AuthUsecase
	profile  usecase.ProfileUsecase
	products usecase.ProductUsecase
	orders   usecase.OrderUsecase
	exports  usecase.ExportUsecase
	metrics  *metrics.Metrics
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
	upgrader websocket.Upgrader
}

// NewHandler is the constructor for Handler
func NewHandler(params HandlerParams) *Handler {
	origins := params.Config.HTTP.AllowOrigins

	return &Handler{
		auth:     params.Auth,
		profile:  params.Profile,
		products: params.Products,
		orders:   params.Orders,
		exports:  params.Exports,
		metrics:  params.Metrics,
		loc:      params.Config.Location(),
		logger:   params.Logger,
		now:      time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get(echo.HeaderOrigin)
				// Native clients send no Origin header.
				return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
	}
}

// factories builds the screens by name.
var factories = map[navigation.Screen]func(*session) screen{
	navigation.ScreenHome:          newHomeScreen,
	navigation.ScreenMyOrders:      newMyOrdersScreen,
	navigation.ScreenProfile:       newProfileScreen,
	navigation.ScreenDashboard:     newDashboardScreen,
	navigation.ScreenProducts:      newProductsScreen,
	navigation.ScreenOrdersList:    newOrdersListScreen,
	navigation.ScreenAddOrder:      newAddOrderScreen,
	navigation.ScreenProductEditor: newProductEditorScreen,
}

// ServeScreen handles GET /live/:screen for an authenticated caller.
func (h *Handler) ServeScreen(c echo.Context) error {
	name := navigation.Screen(c.Param("screen"))
	factory, ok := factories[name]
	if !ok {
		return response.NotFound(c, "SCREEN_NOT_FOUND", "Screen not found")
	}

	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}
	auth, err := h.auth.Session(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !navigation.CanOpen(auth, name) {
		return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
	}

	return h.run(c, string(name), auth, factory)
}

// ServeAuth handles GET /live/auth. The caller may be signed out.
func (h *Handler) ServeAuth(c echo.Context) error {
	var auth *entity.Session
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		resolved, err := h.auth.Session(c.Request().Context(), identity)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		auth = resolved
	}

	return h.run(c, "auth", auth, newAuthScreen)
}

func (h *Handler) run(c echo.Context, name string, auth *entity.Session, build func(*session) screen) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already wrote the HTTP error.
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("screen", name))
	disconnected := h.metrics.LiveConnected(name)
	defer disconnected()

	params := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	conn := newConn(ws, logger)
	sess := newSession(h, auth, conn, params)
	defer conn.close(websocket.CloseNormalClosure, "")
	defer sess.close()

	scr := build(sess)
	sess.machine.Mount()
	if err := scr.open(ctx); err != nil {
		sess.machine.Fail(err)
	}

	go conn.heartbeat(ctx)

	logger.Debug("[Live] Screen opened")
	for {
		var msg Message
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("[Live] Connection lost", slog.Any("error", err))
			}

			break
		}

		switch msg.Action {
		case ActionDismiss:
			sess.machine.Dismiss()
		case ActionReload:
			sess.machine.Mount()
			if err := scr.open(ctx); err != nil {
				sess.machine.Fail(err)
			}
		default:
			if err := scr.handle(ctx, msg); err != nil {
				sess.reply(msg.Action, nil, err)
			}
		}
	}
	logger.Debug("[Live] Screen closed")

	return nil
}

// today is the current instant in the store's timezone.
func (h *Handler) today() time.Time {
	return h.now().In(h.loc)
}
