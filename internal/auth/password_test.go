package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse-1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct-horse-1", hash))
	assert.False(t, CheckPassword("wrong-horse-2", hash))
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-plaintext-9")
	require.NoError(t, err)
	second, err := HashPassword("same-plaintext-9")
	require.NoError(t, err)

	// Salt is randomized per call; hash equality is never meaningful.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-plaintext-9", first))
	assert.True(t, CheckPassword("same-plaintext-9", second))
}
