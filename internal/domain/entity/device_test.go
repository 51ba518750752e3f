package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	platform, ok := ParsePlatform(" iOS ")
	assert.True(t, ok)
	assert.Equal(t, PlatformIOS, platform)

	_, ok = ParsePlatform("symbian")
	assert.False(t, ok)
}

func TestPushTokens(t *testing.T) {
	devices := []*UserDevice{
		{FCMToken: "a", IsActive: true},
		{FCMToken: "b", IsActive: false},
		{FCMToken: "", IsActive: true},
		{FCMToken: "a", IsActive: true},
		nil,
		{FCMToken: "c", IsActive: true},
	}

	assert.Equal(t, []string{"a", "c"}, PushTokens(devices))
	assert.Empty(t, PushTokens(nil))
}
