package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWTToken(t *testing.T) {
	SetJWTConfig("test-secret-at-least-16-chars", time.Hour)

	token, err := GenerateJWTToken("507f1f77bcf86cd799439011", "octocat", "octo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.Subject)
	assert.Equal(t, "octocat", claims.Username)
	assert.Equal(t, "octo@example.com", claims.Email)
}

func TestParseJWTToken_Expired(t *testing.T) {
	SetJWTConfig("test-secret-at-least-16-chars", time.Hour)

	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-at-least-16-chars"))
	require.NoError(t, err)

	_, err = ParseJWTToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseJWTToken_WrongSecret(t *testing.T) {
	SetJWTConfig("the-real-signing-secret-here", time.Hour)
	token, err := GenerateJWTToken("u1", "octocat", "octo@example.com")
	require.NoError(t, err)

	SetJWTConfig("a-completely-different-secret", time.Hour)
	_, err = ParseJWTToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTToken_Garbage(t *testing.T) {
	SetJWTConfig("test-secret-at-least-16-chars", time.Hour)
	_, err := ParseJWTToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateStateToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		state, err := GenerateStateToken()
		require.NoError(t, err)
		// 32 bytes base64url without padding
		assert.Len(t, state, 43)
		assert.NotContains(t, state, "+")
		assert.NotContains(t, state, "/")
		assert.NotContains(t, state, "=")
		assert.False(t, seen[state], "state token repeated")
		seen[state] = true
	}
}
