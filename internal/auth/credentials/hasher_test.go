package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, VerifyPassword(hash, "Secret123"))
	assert.Error(t, VerifyPassword(hash, "Secret124"))
}

func TestHashPasswordNeverPlaintext(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	first, err := HashPassword("Secret123")
	require.NoError(t, err)
	second, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// both digests still verify
	assert.NoError(t, VerifyPassword(first, "Secret123"))
	assert.NoError(t, VerifyPassword(second, "Secret123"))
}
