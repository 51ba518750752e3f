package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "app error",
			err:     errors.WithStack(domainerrors.ErrProductNotFound),
			status:  http.StatusNotFound,
			code:    "PRODUCT_NOT_FOUND",
			message: "Product not found.",
		},
		{
			name:    "echo error",
			err:     echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "method not allowed",
		},
		{
			name:    "body limit",
			err:     echo.ErrStatusRequestEntityTooLarge,
			status:  http.StatusRequestEntityTooLarge,
			code:    "PAYLOAD_TOO_LARGE",
			message: "Request Entity Too Large",
		},
		{
			name:    "unmapped echo error",
			err:     echo.NewHTTPError(http.StatusTeapot),
			status:  http.StatusTeapot,
			code:    "HTTP_ERROR",
			message: "I'm a teapot",
		},
		{
			name:    "unknown error",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "Internal server error.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil))

			m.HandleHTTPError(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, tc.message, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
