package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"otpTTL":         "5m",
			"otpMaxAttempts": 5,
		},
		"export": map[string]any{
			"bucketUrl": "mem://",
			"chromeBin": "",
		},
		"worker": map[string]any{
			"smsWebhookUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_OTPTTL", want: "auth.otpTTL"},
		{envKey: "AUTH_OTPMAXATTEMPTS", want: "auth.otpMaxAttempts"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
		{envKey: "WORKER_SMSWEBHOOKURL", want: "worker.smsWebhookUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SCHEDULER_ENABLED", want: "scheduler.enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
