package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestIssueToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := IssueToken("user-1", "nimali@example.com", "customer", "Nimali", "pic.png")
	require.NoError(t, err)

	claims := parseClaims(t, tokenString, "test-secret")
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "nimali@example.com", claims["email"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, "Nimali", claims["name"])
	assert.NotNil(t, claims["exp"])
}

func TestIssueGuestToken_CarriesGuestRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := issueGuestToken("guest_abc123")
	require.NoError(t, err)

	claims := parseClaims(t, tokenString, "test-secret")
	assert.Equal(t, "guest_abc123", claims["user_id"])
	assert.Equal(t, "guest", claims["role"])
}

func TestIssuedToken_RejectedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := IssueToken("user-1", "a@b.c", "customer", "", "")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateRandomString_UniqueAndHex(t *testing.T) {
	a := generateRandomString(16)
	b := generateRandomString(16)

	assert.Len(t, a, 32) // hex doubles the byte count
	assert.NotEqual(t, a, b)
}
