package entity

import "time"

// Identity is the signed-in principal as reported by the auth service.
type Identity struct {
	UID   string `json:"uid"`
	Phone string `json:"phone"`
}

// OTPChallenge is a pending phone verification.
type OTPChallenge struct {
	Handle    string    // Confirmation handle returned to the client.
	Phone     string    // E.164 phone number the code was sent to.
	CodeHash  string    // Hash of the one-time code.
	Attempts  int       // Failed confirmations so far.
	ExpiresAt time.Time // After this instant the challenge is rejected.
}

// Expired reports whether the challenge can no longer be confirmed.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Session is the per-login context that gates navigation.
type Session struct {
	Identity
	Role            Role `json:"role"`
	ProfileComplete bool `json:"profile_complete"`
}

// AuthTokens is the token pair issued after a successful confirmation.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
