package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "1h")

	employeeID := "emp-1"
	tokenString, expiresAt, err := service.GenerateAccessToken("user-1", "user@example.com", &employeeID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilEmployee(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, _, err := service.GenerateAccessToken("user-1", "user@example.com", nil)
	require.NoError(t, err)

	token, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := service.GenerateAccessToken("user-1", "user@example.com", nil)
	assert.Error(t, err)
}
