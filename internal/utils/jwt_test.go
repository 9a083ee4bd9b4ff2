package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	info, ok := InspectToken(signed(t, jwt.MapClaims{"sub": "admin", "exp": exp.Unix()}))
	require.True(t, ok)
	assert.Equal(t, "admin", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspectToken_IDClaim(t *testing.T) {
	info, ok := InspectToken(signed(t, jwt.MapClaims{"id": "66f0"}))
	require.True(t, ok)
	assert.Equal(t, "66f0", info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspectToken_Opaque(t *testing.T) {
	_, ok := InspectToken("not-a-jwt")
	assert.False(t, ok)
}
