// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// DefaultCountryCode is prefixed to 10-digit local phone numbers.
const DefaultCountryCode = "+91"

// User is a customer or administrator profile, keyed by the identity assigned by the auth service.
type User struct {
	UID       string    `json:"uid"`        // Identity assigned by the auth service.
	Name      string    `json:"name"`       // Display name entered at profile completion.
	Phone     string    `json:"phone"`      // E.164 phone number with the fixed country code.
	Address   string    `json:"address"`    // Free-text delivery address.
	Role      Role      `json:"role"`       // Gates which screens are reachable.
	CreatedAt time.Time `json:"created_at"` // Server-assigned creation timestamp.
}

// IsAdmin reports whether the user may use the admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// NormalizePhone returns the E.164 form of a phone number.
// A bare 10-digit local number gets the country code prefixed; numbers that
// already carry a leading '+' are returned trimmed.
func NormalizePhone(countryCode, phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	return countryCode + phone
}
