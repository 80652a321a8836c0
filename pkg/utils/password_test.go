package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordPlainText(t *testing.T) {
	assert.True(t, CheckPassword("admin123", "admin123"))
	assert.False(t, CheckPassword("admin1234", "admin123"))
	assert.False(t, CheckPassword("Admin123", "admin123"))
	assert.False(t, CheckPassword("", "admin123"))
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("user123")
	require.NoError(t, err)
	assert.True(t, IsBcryptHash(hash))

	assert.True(t, CheckPassword("user123", hash))
	assert.False(t, CheckPassword("user124", hash))
	assert.False(t, CheckPassword(hash, hash), "the hash itself is not a valid credential")
}
