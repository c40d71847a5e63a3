package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() JWTManager {
	return JWTManager{
		Secret:          []byte("unit-test-secret"),
		Issuer:          "gowheels-test",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, ttl, err := m.IssueAccessToken("user-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "gowheels-test", claims.Issuer)
}

func TestAccessToken_RejectsWrongSecret(t *testing.T) {
	m := testManager()
	token, _, err := m.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	other := testManager()
	other.Secret = []byte("a-different-secret")
	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseAccessToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessToken_RejectsExpired(t *testing.T) {
	m := testManager()
	m.AccessTokenTTL = -time.Minute

	token, _, err := m.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, ttl, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, ttl)

	userID, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	m := testManager()

	access, _, err := m.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
