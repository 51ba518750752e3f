package handler

import (
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// currentSession builds the session carried by the access token.
func currentSession(c echo.Context) (*entity.Session, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, false
	}

	return &entity.Session{
		Identity:        identity,
		Role:            deliverycontext.GetRole(c),
		ProfileComplete: true,
	}, true
}
