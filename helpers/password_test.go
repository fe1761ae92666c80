package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSaltsEveryHash(t *testing.T) {
	a, err := HashPassword("hunter22")
	require.NoError(t, err)
	b, err := HashPassword("hunter22")
	require.NoError(t, err)

	// two customers with the same password must not share a stored hash
	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword("hunter22", a))
	assert.True(t, VerifyPassword("hunter22", b))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("hunter22", hash))
	assert.False(t, VerifyPassword("hunter23", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("hunter22", ""))
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
