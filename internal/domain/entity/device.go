package entity

import (
	"strings"
	"time"
)

// Platforms a push device can run on.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// UserDevice is a customer or admin device that receives order and
// delivery reminder pushes.
type UserDevice struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // stable per install, chosen by the client
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reachable reports whether a push can be sent to the device.
func (d *UserDevice) Reachable() bool {
	return d != nil && d.IsActive && d.FCMToken != ""
}

// ParsePlatform normalises a platform name. ok is false for unknown platforms.
func ParsePlatform(raw string) (platform string, ok bool) {
	platform = strings.ToLower(strings.TrimSpace(raw))
	switch platform {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return platform, true
	default:
		return "", false
	}
}

// PushTokens returns the distinct tokens of the reachable devices, in order.
func PushTokens(devices []*UserDevice) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if !device.Reachable() {
			continue
		}
		if _, dup := seen[device.FCMToken]; dup {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}
