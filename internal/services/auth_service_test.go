package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/middleware"
)

func TestAuthService_PasswordRoundTrip(t *testing.T) {
	auth := NewAuthService([]byte("test-secret"), 15*time.Minute)

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, auth.CheckPassword(hash, "s3cret"))
	assert.Error(t, auth.CheckPassword(hash, "wrong"))
}

func TestAuthService_GenerateToken(t *testing.T) {
	secret := []byte("test-secret")
	auth := NewAuthService(secret, 15*time.Minute)

	tokenStr, err := auth.GenerateToken("user-id-test")
	require.NoError(t, err)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "user-id-test", claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
