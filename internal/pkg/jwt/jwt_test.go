package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", "15m")

	tokenString, expiresAt, err := service.GenerateAccessToken("user-1", "company-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(service.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "company-1", claims["company_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	service := NewJWTService("test-secret", "not-a-duration")

	_, _, err := service.GenerateAccessToken("user-1", "company-1", "admin")
	assert.Error(t, err)
}

func TestGenerateAccessTokenRejectedByOtherKey(t *testing.T) {
	minting := NewJWTService("secret-a", "15m")
	verifying := NewJWTService("secret-b", "15m")

	tokenString, _, err := minting.GenerateAccessToken("user-1", "company-1", "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifying.JWTAuth(), tokenString)
	assert.Error(t, err)
}
