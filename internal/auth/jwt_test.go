package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestInitJWTSecretEmpty(t *testing.T) {
	assert.Error(t, InitJWTSecret(""))
}

func TestVerifyTokenGarbage(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	_, err := VerifyToken("not-a-token")
	assert.Error(t, err)

	_, err = VerifyToken("")
	assert.Error(t, err)
}

func TestVerifyTokenTampered(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	token, err := GenerateToken(42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken(tampered)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	claims := jwt.MapClaims{
		"user_id": float64(42),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	_, err = VerifyToken(expired)
	assert.Error(t, err, "a correctly signed but expired token must be rejected")
}

func TestVerifyTokenWrongKey(t *testing.T) {
	require.NoError(t, InitJWTSecret("first-secret"))

	token, err := GenerateToken(42)
	require.NoError(t, err)

	require.NoError(t, InitJWTSecret("second-secret"))

	_, err = VerifyToken(token)
	assert.Error(t, err)
}
