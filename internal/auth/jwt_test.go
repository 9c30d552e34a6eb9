// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/config"
	"github.com/dheerghayush/storefront-api/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "0123456789abcdef0123456789abcdef",
		AccessTokenExpire: 24 * time.Hour,
		Issuer:            "storefront-api",
		Audience:          "storefront",
	}
}

func newTestJWT(t *testing.T, now time.Time) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestJWT_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestJWT(t, now)

	token, expiresAt, err := m.CreateAccessToken(AccessTokenClaims{
		Subject: "a1",
		Email:   "admin@gmail.com",
		Type:    KindAdmin,
		Role:    "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)

	claims, err := m.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.Subject)
	assert.Equal(t, KindAdmin, claims.Type)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@gmail.com", claims.Email)
	assert.NotEmpty(t, claims.JTI)
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestJWT_Expired(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestJWT(t, issued)

	token, _, err := m.CreateAccessToken(AccessTokenClaims{Subject: "u1", Type: KindUser})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = m.VerifyAccessToken(token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestJWT_RejectsForeignSignature(t *testing.T) {
	now := time.Now()
	m := newTestJWT(t, now)

	cfg := testJWTConfig()
	cfg.Secret = "ffffffffffffffffffffffffffffffff"
	other, err := NewJWTManager(cfg)
	require.NoError(t, err)

	token, _, err := other.CreateAccessToken(AccessTokenClaims{Subject: "u1", Type: KindUser})
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)

	_, err = m.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestJWT_RejectsUnknownType(t *testing.T) {
	m := newTestJWT(t, time.Now())

	token, _, err := m.CreateAccessToken(AccessTokenClaims{Subject: "x", Type: "service"})
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestNewJWTManager_EmptySecret(t *testing.T) {
	_, err := NewJWTManager(config.JWTConfig{})
	assert.Error(t, err)
}
