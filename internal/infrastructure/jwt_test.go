package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Generate("64f000000000000000000001")
	require.NoError(t, err)

	subject, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", subject)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Generate("64f000000000000000000001")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate("64f000000000000000000001")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
