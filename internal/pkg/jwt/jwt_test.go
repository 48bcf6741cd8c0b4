package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "168h"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateAccessToken("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsRevoked(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	_, err := svc.ValidateRefreshToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)
	other := NewJWTService("a-different-secret", testAccessExp, testRefreshExp)

	token, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	expiresAt := time.Now().Add(time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
