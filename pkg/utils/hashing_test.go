package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	assert.NoError(t, ComparePasswords(hash, "pass1234"))
	assert.Error(t, ComparePasswords(hash, "wrong-pass"))
}

func TestGenerateSecureTokenIsUnique(t *testing.T) {
	a, err := GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}

func TestFilterAllowed(t *testing.T) {
	obj := map[string]any{
		"name":     "Okello",
		"role":     "admin",
		"password": "x",
	}
	filtered := FilterAllowed(obj, "name", "email")
	assert.Equal(t, map[string]any{"name": "Okello"}, filtered)
}
