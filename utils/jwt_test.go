package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := GenerateJWT(secret, 42, "a@x.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestParseJWTRejects(t *testing.T) {
	secret := []byte("s3cret")

	tok, err := GenerateJWT([]byte("other"), 1, "a@x.com", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(secret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateJWT(secret, 1, "a@x.com", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT(secret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", h))
	assert.False(t, CheckPasswordHash("wrong", h))
}
