package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/metrics"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type liveFixtures struct {
	server   *httptest.Server
	auth     *mockUsecase.MockAuthUsecase
	profile  *mockUsecase.MockProfileUsecase
	products *mockUsecase.MockProductUsecase
	orders   *mockUsecase.MockOrderUsecase
	exports  *mockUsecase.MockExportUsecase
}

// frame is a decoded server frame.
type frame struct {
	Type   string `json:"type"`
	Phase  string `json:"phase"`
	Action string `json:"action"`
	OK     bool   `json:"ok"`
	Notice *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"notice"`
	Data json.RawMessage `json:"data"`
}

func createLiveFixtures(t *testing.T) liveFixtures {
	fx := liveFixtures{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		profile:  mockUsecase.NewMockProfileUsecase(t),
		products: mockUsecase.NewMockProductUsecase(t),
		orders:   mockUsecase.NewMockOrderUsecase(t),
		exports:  mockUsecase.NewMockExportUsecase(t),
	}

	cfg := &config.Config{}
	cfg.Env.Timezone = "Asia/Kolkata"

	handler := NewHandler(HandlerParams{
		Auth:     fx.auth,
		Profile:  fx.profile,
		Products: fx.products,
		Orders:   fx.orders,
		Exports:  fx.exports,
		Metrics:  metrics.New(),
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	// Stand-in for the token middleware: the caller is named by a header.
	identify := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid := c.Request().Header.Get("X-Test-UID"); uid != "" {
				deliverycontext.SetPrincipal(c, uid, "+919876543210", nil)
			}

			return next(c)
		}
	}
	e.GET("/live/auth", handler.ServeAuth, identify)
	e.GET("/live/:screen", handler.ServeScreen, identify)

	fx.server = httptest.NewServer(e)
	t.Cleanup(fx.server.Close)

	return fx
}

func (fx liveFixtures) dial(t *testing.T, path, uid string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	header := http.Header{}
	if uid != "" {
		header.Set("X-Test-UID", uid)
	}
	url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + path
	ws, resp, err := websocket.DefaultDialer.Dial(url, header)
	if ws != nil {
		t.Cleanup(func() { _ = ws.Close() })
	}

	return ws, resp, err
}

func readFrame(t *testing.T, ws *websocket.Conn) frame {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f frame
	require.NoError(t, ws.ReadJSON(&f))

	return f
}

// readUntil skips frames until match accepts one.
func readUntil(t *testing.T, ws *websocket.Conn, match func(frame) bool) frame {
	t.Helper()

	for {
		if f := readFrame(t, ws); match(f) {
			return f
		}
	}
}

func ready(f frame) bool {
	return f.Type == FrameState && f.Phase == "ready"
}

func result(f frame) bool {
	return f.Type == FrameResult
}

func adminSession(uid string) *entity.Session {
	return &entity.Session{Identity: entity.Identity{UID: uid, Phone: "+919876543210"}, Role: entity.RoleAdmin, ProfileComplete: true}
}

func customerSession(uid string) *entity.Session {
	return &entity.Session{Identity: entity.Identity{UID: uid, Phone: "+919876543210"}, Role: entity.RoleUser, ProfileComplete: true}
}

func TestHandler_ProductsScreen_DeliversSnapshot(t *testing.T) {
	fx := createLiveFixtures(t)

	fx.auth.EXPECT().Session(mock.Anything, mock.Anything).Return(adminSession("a1"), nil)
	released := make(chan struct{})
	fx.products.EXPECT().WatchProducts(mock.Anything, "rice", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
			listener([]*entity.Product{{ID: "p1", Name: "Rice"}}, nil)

			return func() { close(released) }, nil
		})

	ws, _, err := fx.dial(t, "/live/products?search=rice", "a1")
	require.NoError(t, err)

	f := readUntil(t, ws, ready)
	var data ProductsData
	require.NoError(t, json.Unmarshal(f.Data, &data))
	assert.Equal(t, "rice", data.Search)
	require.Len(t, data.Products, 1)
	assert.Equal(t, "Rice", data.Products[0].Name)

	require.NoError(t, ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released after the client left")
	}
}

func TestHandler_ProductsScreen_Delete(t *testing.T) {
	fx := createLiveFixtures(t)

	fx.auth.EXPECT().Session(mock.Anything, mock.Anything).Return(adminSession("a1"), nil)
	fx.products.EXPECT().WatchProducts(mock.Anything, "", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, listener repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
			listener([]*entity.Product{{ID: "p1", Name: "Rice"}}, nil)

			return func() {}, nil
		})
	fx.products.EXPECT().DeleteProduct(mock.Anything, "p1").Return(nil)

	ws, _, err := fx.dial(t, "/live/products", "a1")
	require.NoError(t, err)
	readUntil(t, ws, ready)

	require.NoError(t, ws.WriteJSON(Message{Action: ActionDelete, Payload: json.RawMessage(`{"id":"p1"}`)}))

	f := readUntil(t, ws, result)
	assert.Equal(t, ActionDelete, f.Action)
	assert.True(t, f.OK)
}

func TestHandler_UnknownAction(t *testing.T) {
	fx := createLiveFixtures(t)

	fx.auth.EXPECT().Session(mock.Anything, mock.Anything).Return(adminSession("a1"), nil)
	fx.products.EXPECT().WatchProducts(mock.Anything, "", mock.Anything).Return(func() {}, nil)

	ws, _, err := fx.dial(t, "/live/products", "a1")
	require.NoError(t, err)

	require.NoError(t, ws.WriteJSON(Message{Action: "explode"}))

	f := readUntil(t, ws, result)
	assert.False(t, f.OK)
	require.NotNil(t, f.Notice)
	assert.Equal(t, "error", f.Notice.Kind)
}

func TestHandler_ScreenAccess(t *testing.T) {
	fx := createLiveFixtures(t)

	fx.auth.EXPECT().Session(mock.Anything, entity.Identity{UID: "u1", Phone: "+919876543210"}).Return(customerSession("u1"), nil)

	_, resp, err := fx.dial(t, "/live/dashboard", "u1")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = fx.dial(t, "/live/nowhere", "u1")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, resp, err = fx.dial(t, "/live/home", "")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_AuthScreen_SignIn(t *testing.T) {
	fx := createLiveFixtures(t)

	session := customerSession("u1")
	fx.auth.EXPECT().SendOTP(mock.Anything, "9876543210").
		Return(&usecase.SendOTPOutput{Handle: "h1", Phone: "+919876543210"}, nil)
	fx.auth.EXPECT().ConfirmOTP(mock.Anything, "h1", "123456").
		Return(&usecase.AuthOutput{Session: session, Landing: "/home"}, nil)

	ws, _, err := fx.dial(t, "/live/auth", "")
	require.NoError(t, err)

	f := readUntil(t, ws, ready)
	var state AuthState
	require.NoError(t, json.Unmarshal(f.Data, &state))
	assert.Nil(t, state.Session)
	assert.Equal(t, "/", state.Landing)
	assert.Empty(t, state.Tabs)

	require.NoError(t, ws.WriteJSON(Message{Action: ActionSendOTP, Payload: json.RawMessage(`{"phone":"9876543210"}`)}))
	f = readUntil(t, ws, result)
	assert.True(t, f.OK)
	var sent usecase.SendOTPOutput
	require.NoError(t, json.Unmarshal(f.Data, &sent))
	assert.Equal(t, "h1", sent.Handle)

	require.NoError(t, ws.WriteJSON(Message{Action: ActionConfirmOTP, Payload: json.RawMessage(`{"handle":"h1","code":"123456"}`)}))
	f = readUntil(t, ws, func(f frame) bool {
		return ready(f) && strings.Contains(string(f.Data), `"landing":"/home"`)
	})
	require.NoError(t, json.Unmarshal(f.Data, &state))
	require.NotNil(t, state.Session)
	assert.Equal(t, "u1", state.Session.UID)
	assert.NotEmpty(t, state.Tabs)
}

func TestHandler_AuthScreen_CompleteProfileNeedsIdentity(t *testing.T) {
	fx := createLiveFixtures(t)

	ws, _, err := fx.dial(t, "/live/auth", "")
	require.NoError(t, err)
	readUntil(t, ws, ready)

	require.NoError(t, ws.WriteJSON(Message{Action: ActionCompleteProfile, Payload: json.RawMessage(`{"name":"Asha","address":"MG Road"}`)}))
	f := readUntil(t, ws, result)
	assert.False(t, f.OK)
}
