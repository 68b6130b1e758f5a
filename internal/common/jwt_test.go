package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestValidTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ValidToken(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestValidTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidToken(token, secret)
	assert.Error(t, err)
}

func TestValidTokenGarbage(t *testing.T) {
	_, err := ValidToken("not.a.token", []byte("test-secret"))
	assert.Error(t, err)
}
