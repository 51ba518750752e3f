package navigation

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func session(role entity.Role, complete bool) *entity.Session {
	return &entity.Session{Identity: entity.Identity{UID: "u1"}, Role: role, ProfileComplete: complete}
}

func TestLanding(t *testing.T) {
	assert.Equal(t, RouteLogin, Landing(nil))
	assert.Equal(t, RouteSignup, Landing(session(entity.RoleUser, false)))
	assert.Equal(t, RouteHome, Landing(session(entity.RoleUser, true)))
	assert.Equal(t, RouteDashboard, Landing(session(entity.RoleAdmin, true)))
}

func screens(tabs []Tab) []Screen {
	out := make([]Screen, 0, len(tabs))
	for _, tab := range tabs {
		out = append(out, tab.Screen)
	}

	return out
}

func TestTabs_ByRole(t *testing.T) {
	assert.Equal(t,
		[]Screen{ScreenDashboard, ScreenProducts, ScreenOrdersList, ScreenProfile},
		screens(Tabs(session(entity.RoleAdmin, true))))
	assert.Equal(t,
		[]Screen{ScreenHome, ScreenMyOrders, ScreenProfile},
		screens(Tabs(session(entity.RoleUser, true))))
	assert.Empty(t, Tabs(nil))
}

func TestCanOpen(t *testing.T) {
	admin := session(entity.RoleAdmin, true)
	customer := session(entity.RoleUser, true)

	assert.True(t, CanOpen(admin, ScreenAddOrder))
	assert.True(t, CanOpen(admin, ScreenProfile))
	assert.False(t, CanOpen(admin, ScreenHome))
	assert.True(t, CanOpen(customer, ScreenMyOrders))
	assert.False(t, CanOpen(customer, ScreenDashboard))
	assert.False(t, CanOpen(customer, "settings"))
	assert.False(t, CanOpen(session(entity.RoleUser, false), ScreenHome))
}
