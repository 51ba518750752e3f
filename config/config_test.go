package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultTimezone, cfg.Env.Timezone)
	assert.Equal(t, "firestore", cfg.Storage.Driver)
	assert.Equal(t, "+91", cfg.Auth.CountryCode)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 5, cfg.Auth.OTPMaxAttempts)
	assert.Equal(t, "memory", cfg.Auth.Store)
	assert.False(t, cfg.Orders.LegacyCustomerPaymentCasing)
	assert.Equal(t, "mem://", cfg.Export.BucketURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Driver: "postgres"},
		Auth:    &AuthConfig{OTPTTL: time.Minute, Store: "redis"},
		Orders:  &OrdersConfig{LegacyCustomerPaymentCasing: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, "redis", cfg.Auth.Store)
	assert.True(t, cfg.Orders.LegacyCustomerPaymentCasing)
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Timezone = "Asia/Kolkata"
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())

	cfg.Env.Timezone = "Mars/Olympus"
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("AUTH_OTPMAXATTEMPTS", "9")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("ORDERS_LEGACYCUSTOMERPAYMENTCASING", "true")

	cfg, err := LoadWithEnv[Config]("config")

	assert.NoError(t, err)
	assert.Equal(t, 9, cfg.Auth.OTPMaxAttempts)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.True(t, cfg.Orders.LegacyCustomerPaymentCasing)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
}
