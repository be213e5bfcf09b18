package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMakerRoundTrip(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)
	userID := uuid.New()

	token, err := maker.Create(userID, "admin")
	require.NoError(t, err)

	claims, err := maker.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenMakerExpired(t *testing.T) {
	maker := NewTokenMaker("test-secret", -time.Minute)

	token, err := maker.Create(uuid.New(), "user")
	require.NoError(t, err)

	_, err = maker.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenMakerWrongSecret(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)
	other := NewTokenMaker("other-secret", time.Hour)

	token, err := maker.Create(uuid.New(), "user")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}
