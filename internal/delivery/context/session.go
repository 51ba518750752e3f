package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the authenticated user ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the key for storing the token roles in echo.Context.
	KeyRoles ContextKey = "roles"

	// KeyPhone is the key for storing the verified phone number in echo.Context.
	KeyPhone ContextKey = "phone"
)

// SetPrincipal stores the verified token subject in echo.Context.
func SetPrincipal(c echo.Context, userID, phone string, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyPhone), phone)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(KeyUserID)).(string)

	return id, ok && id != ""
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}

// GetIdentity returns the authenticated identity.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	uid, ok := GetUserID(c)
	if !ok {
		return entity.Identity{}, false
	}
	phone, _ := c.Get(string(KeyPhone)).(string)

	return entity.Identity{UID: uid, Phone: phone}, true
}

// GetRole returns the most privileged role carried by the access token.
func GetRole(c echo.Context) entity.Role {
	for _, r := range GetRoles(c) {
		if entity.Role(r).IsAdmin() {
			return entity.RoleAdmin
		}
	}

	return entity.RoleUser
}
