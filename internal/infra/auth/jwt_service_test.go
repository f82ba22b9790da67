package auth

import (
	"testing"
	"time"

	"poison/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "access", claims.Type)

	claims, err = svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)

	// Access tokens are not valid refresh tokens and vice versa. The secrets
	// differ, so validation fails on signature before the type check.
	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsForgedToken(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-access"
	otherCfg.SecretKey.Refresh = "other-refresh"
	otherCfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Minute}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	forged, _, err := other.GenerateTokens(42)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(forged)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: -time.Minute,
	}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(42)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStableAndOpaque(t *testing.T) {
	svc := newTestJWTService(t)

	hash := svc.HashToken("some-token")

	assert.Equal(t, hash, svc.HashToken("some-token"))
	assert.NotEqual(t, hash, svc.HashToken("other-token"))
	assert.NotContains(t, hash, "some-token")
	assert.Len(t, hash, 64)
}
