package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/navigation"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves phone sign-in and the session of the caller.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SendOTPRequest carries the phone number typed on the login screen.
// The number is checked by the use case so the user sees the login message.
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// ConfirmOTPRequest carries the code typed by the user.
type ConfirmOTPRequest struct {
	Handle string `json:"handle" validate:"required"`
	Code   string `json:"code"`
}

// IDTokenRequest carries an ID token minted by the managed auth service.
type IDTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse tells the client where it lands and which tabs it shows.
type SessionResponse struct {
	Session *entity.Session  `json:"session"`
	Landing string           `json:"landing"`
	Tabs    []navigation.Tab `json:"tabs"`
}

// SendOTP starts a phone verification.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid phone input")
	}

	out, err := h.authUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, out)
}

// ConfirmOTP signs in with the code that was sent.
func (h *AuthHandler) ConfirmOTP(c echo.Context) error {
	var req ConfirmOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.authUC.ConfirmOTP(c.Request().Context(), req.Handle, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, out)
}

// ConfirmIDToken signs in with a verified ID token.
func (h *AuthHandler) ConfirmIDToken(c echo.Context) error {
	var req IDTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.authUC.ConfirmIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, out)
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, out)
}

// SignOut revokes the refresh token of the current login.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.authUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, SessionResponse{Landing: navigation.Landing(nil), Tabs: []navigation.Tab{}})
}

// Session resolves the caller's role and profile state.
func (h *AuthHandler) Session(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	session, err := h.authUC.Session(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, SessionResponse{
		Session: session,
		Landing: navigation.Landing(session),
		Tabs:    navigation.Tabs(session),
	})
}
