package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(HeaderXRequestID, header)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newContext("from-client")
	assert.Equal(t, "from-client", GetRequestID(c))

	SetRequestID(c, "assigned")
	assert.Equal(t, "assigned", GetRequestID(c))

	c = newContext("")
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipal(t *testing.T) {
	c := newContext("")
	_, ok := GetIdentity(c)
	assert.False(t, ok)
	assert.Equal(t, entity.RoleUser, GetRole(c))

	SetPrincipal(c, "u1", "+919876543210", []string{"user", "admin"})
	identity, ok := GetIdentity(c)
	assert.True(t, ok)
	assert.Equal(t, entity.Identity{UID: "u1", Phone: "+919876543210"}, identity)
	assert.Equal(t, entity.RoleAdmin, GetRole(c))
}
