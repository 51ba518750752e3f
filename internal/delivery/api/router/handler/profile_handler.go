package handler

import (
	"log/slog"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile completion and the profile screen.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// CompleteProfileRequest is the signup form.
type CompleteProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AddressSuggestionQuery is the device position to reverse geocode.
type AddressSuggestionQuery struct {
	Latitude  float64 `query:"lat" json:"lat" validate:"latitude"`
	Longitude float64 `query:"lng" json:"lng" validate:"longitude"`
}

// AddressSuggestion is a prefilled address line.
type AddressSuggestion struct {
	Address string `json:"address"`
}

// CompleteProfile creates the caller's customer profile.
func (h *ProfileHandler) CompleteProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	var req CompleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	user, err := h.profileUC.CompleteProfile(c.Request().Context(), identity, &usecase.CompleteProfileInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// SuggestAddress turns the device position into an address line.
func (h *ProfileHandler) SuggestAddress(c echo.Context) error {
	var query AddressSuggestionQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid coordinates")
	}
	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := h.profileUC.SuggestAddress(c.Request().Context(), query.Latitude, query.Longitude)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, AddressSuggestion{Address: address})
}

// TodaysDeliveries lists the caller's orders arriving today.
func (h *ProfileHandler) TodaysDeliveries(c echo.Context) error {
	uid, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	orders, err := h.profileUC.TodaysDeliveries(c.Request().Context(), uid, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}
