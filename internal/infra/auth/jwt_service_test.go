package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, tokenService)

	roles := []string{"user"}

	accessToken, refreshToken, err := tokenService.GenerateTokens("uid-1", "+919876543210", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := tokenService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", accessClaims.UserID)
	assert.Equal(t, "+919876543210", accessClaims.Phone)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.NotEmpty(t, accessClaims.ID)

	// Validate refresh token
	refreshClaims, err := tokenService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := tokenService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other := newTestJWTConfig()
	other.SecretKey.Access = "another_access_secret_key_for_testing"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := issuer.GenerateTokens("uid-1", "+919876543210", []string{"admin"})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	srv := tokenService.(*jwtService)
	issued := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return issued }

	accessToken, _, err := srv.GenerateTokens("uid-1", "+919876543210", nil)
	require.NoError(t, err)

	srv.now = func() time.Time { return issued.Add(defaultAccessTTL + time.Minute) }
	_, err = srv.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestJWTService_SecretsValidation(t *testing.T) {
	empty := &config.Config{}
	tokenService, err := NewJWTService(empty)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")

	same := newTestJWTConfig()
	same.SecretKey.Refresh = same.SecretKey.Access
	_, err = NewJWTService(same)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, tokenService.GetRefreshTokenDuration())

	cfg := newTestJWTConfig()
	cfg.Auth.RefreshTokenTTL = 30 * 24 * time.Hour
	tokenService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, tokenService.GetRefreshTokenDuration())
}
