package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: "u1",
		Phone:  "+919876543210",
		Roles:  []string{"user"},
		Type:   service.TokenTypeAccess,
	}, nil)
	tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: "u1", Type: service.TokenTypeRefresh}, nil)
	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	t.Run("valid access token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		c, rec := newContext(req)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		assert.Equal(t, entity.Identity{UID: "u1", Phone: "+919876543210"}, identity)
		assert.Equal(t, entity.RoleUser, deliverycontext.GetRole(c))
	})

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic good",
		"refresh token":  "Bearer refresh",
		"expired token":  "Bearer expired",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if header != "" {
				req.Header.Set(echo.HeaderAuthorization, header)
			}
			c, rec := newContext(req)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
		})
	}
}

func TestAuthMiddleware_Authenticate_WebSocketQueryToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("ws-token").Return(&service.Claims{UserID: "a1", Roles: []string{"admin"}, Type: service.TokenTypeAccess}, nil)

	req := httptest.NewRequest(http.MethodGet, "/live/dashboard?access_token=ws-token", nil)
	req.Header.Set(echo.HeaderUpgrade, "websocket")
	req.Header.Set(echo.HeaderConnection, "Upgrade")
	c, rec := newContext(req)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, entity.RoleAdmin, deliverycontext.GetRole(c))
}

func TestAuthMiddleware_Authenticate_QueryTokenIgnoredOutsideWebSocket(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?access_token=leaked", nil)
	c, rec := newContext(req)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Identify(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

	anonymous, rec := newContext(httptest.NewRequest(http.MethodGet, "/live/auth", nil))
	require.NoError(t, m.Identify(okHandler)(anonymous))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := deliverycontext.GetUserID(anonymous)
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/live/auth", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	invalid, rec := newContext(req)
	require.NoError(t, m.Identify(okHandler)(invalid))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok = deliverycontext.GetUserID(invalid)
	assert.False(t, ok)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	requireAdmin := m.RequireRole(entity.RoleAdmin)(okHandler)

	customer, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/v1/products", nil))
	deliverycontext.SetPrincipal(customer, "u1", "", []string{"user"})
	require.NoError(t, requireAdmin(customer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/v1/products", nil))
	deliverycontext.SetPrincipal(admin, "a1", "", []string{"admin"})
	require.NoError(t, requireAdmin(admin))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
