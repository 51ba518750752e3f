// Package navigation decides which screens a session may reach.
package navigation

import "storefront/internal/domain/entity"

// Screen identifies a client screen. The same names address the live
// screen endpoints.
type Screen string

const (
	ScreenLogin         Screen = "login"
	ScreenSignup        Screen = "signup"
	ScreenHome          Screen = "home"
	ScreenMyOrders      Screen = "my-orders"
	ScreenProfile       Screen = "profile"
	ScreenDashboard     Screen = "dashboard"
	ScreenProducts      Screen = "products"
	ScreenOrdersList    Screen = "orders-list"
	ScreenAddOrder      Screen = "add-order"
	ScreenProductEditor Screen = "product-editor"
)

// Landing routes.
const (
	RouteLogin     = "/"
	RouteSignup    = "/signup"
	RouteHome      = "/home"
	RouteDashboard = "/dashboard"
)

// audience says who may open a screen.
type audience int

const (
	anyone audience = iota
	customers
	admins
)

// Tab is an entry of the bottom tab bar.
type Tab struct {
	Screen Screen `json:"screen"`
	Title  string `json:"title"`
	Route  string `json:"route"`
}

type screenRule struct {
	audience audience
	tab      *Tab // nil for screens reached by pushing, not from the tab bar
}

// Tab bar order is the declaration order of this table.
var rules = []struct {
	screen Screen
	rule   screenRule
}{
	{ScreenDashboard, screenRule{admins, &Tab{ScreenDashboard, "Dashboard", "/dashboard"}}},
	{ScreenProducts, screenRule{admins, &Tab{ScreenProducts, "Products", "/products"}}},
	{ScreenOrdersList, screenRule{admins, &Tab{ScreenOrdersList, "All Orders", "/ordersList"}}},
	{ScreenProductEditor, screenRule{admins, nil}},
	{ScreenAddOrder, screenRule{admins, nil}},
	{ScreenHome, screenRule{customers, &Tab{ScreenHome, "Home", "/home"}}},
	{ScreenMyOrders, screenRule{customers, &Tab{ScreenMyOrders, "My Orders", "/myOrder"}}},
	{ScreenProfile, screenRule{anyone, &Tab{ScreenProfile, "Profile", "/profile"}}},
}

// Landing is the route a session opens on: the admin console, the
// customer home, or profile completion when no profile exists.
func Landing(session *entity.Session) string {
	switch {
	case session == nil:
		return RouteLogin
	case !session.ProfileComplete:
		return RouteSignup
	case session.Role.IsAdmin():
		return RouteDashboard
	default:
		return RouteHome
	}
}

// Tabs lists the tab bar entries visible to session.
func Tabs(session *entity.Session) []Tab {
	tabs := make([]Tab, 0, len(rules))
	for _, r := range rules {
		if r.rule.tab != nil && allowed(session, r.rule.audience) {
			tabs = append(tabs, *r.rule.tab)
		}
	}

	return tabs
}

// CanOpen reports whether session may open screen. Unknown screens are refused.
func CanOpen(session *entity.Session, screen Screen) bool {
	for _, r := range rules {
		if r.screen == screen {
			return allowed(session, r.rule.audience)
		}
	}

	return false
}

func allowed(session *entity.Session, who audience) bool {
	if session == nil || !session.ProfileComplete {
		return false
	}
	switch who {
	case admins:
		return session.Role.IsAdmin()
	case customers:
		return !session.Role.IsAdmin()
	default:
		return true
	}
}
