package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "bfa")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer("bfa"))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGenerateJWT_RequiresSubject(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour, "")
	assert.ErrorIs(t, err, ErrEmptySubject)
}
