package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each hash embeds a fresh salt")
	assert.True(t, h.Verify("same-password", h1))
	assert.True(t, h.Verify("same-password", h2))
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)
	_, err := h.Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret1", ""))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	// Out-of-range costs must not panic hashing; they fall back to the
	// library default.
	h := NewPasswordHasher(-1)
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw", hash))
}
