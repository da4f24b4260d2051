package service

import (
	"testing"

	"github.com/hoangnln/testtrack/config"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenUser() *model.User {
	return &model.User{
		ID:       "6a140a65-5f5a-4e7a-9a39-1f59bdcf63ab",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleTester,
	}
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(testConfig())
	user := testTokenUser()

	signed, err := tokens.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.ParseAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTTL = -10
	tokens := NewTokenService(cfg)

	signed, err := tokens.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)

	_, err = tokens.ParseAccessToken(signed)
	assert.Error(t, err)
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	tokens := NewTokenService(testConfig())

	signed, err := tokens.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.ParseAccessToken(tampered)
	assert.Error(t, err)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	tokens := NewTokenService(testConfig())
	other := NewTokenService(&config.Config{JWT: config.JWT{Secret: "different-secret", AccessTTL: 3600, RefreshTTL: 604800}})

	signed, err := tokens.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)

	_, err = other.ParseAccessToken(signed)
	assert.Error(t, err)
}

func TestTokenService_AccessTokenIsNotARefreshToken(t *testing.T) {
	tokens := NewTokenService(testConfig())
	user := testTokenUser()

	access, err := tokens.GenerateAccessToken(user)
	require.NoError(t, err)

	// The refresh parser requires the type marker, which access tokens lack.
	_, err = tokens.ParseRefreshToken(access)
	assert.Error(t, err)

	refresh, err := tokens.GenerateRefreshToken(user)
	require.NoError(t, err)
	claims, err := tokens.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}
