package entity

// Role represents the type of role a user can have in the storefront.
type Role string

const (
	// RoleUser indicates a regular customer.
	RoleUser Role = "user"
	// RoleAdmin indicates a store administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to the admin console.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole converts a stored role string, falling back to RoleUser for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
