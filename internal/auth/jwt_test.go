package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aplyease_backend/internal/config"
	"aplyease_backend/internal/models"
)

func tokenManagerWith(secret string, ttlMinutes int) *TokenManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlMinutes
	return NewTokenManager(cfg)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := tokenManagerWith("test-secret", 60)

	token, err := tm.Generate("user-1", models.UserRoleEmployee)
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleEmployee, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := tokenManagerWith("secret-a", 60)
	verifier := tokenManagerWith("secret-b", 60)

	token, err := issuer.Generate("user-1", models.UserRoleClient)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	tm := tokenManagerWith("test-secret", -1)

	token, err := tm.Generate("user-1", models.UserRoleClient)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	t.Parallel()

	tm := tokenManagerWith("test-secret", 60)

	_, err := tm.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
