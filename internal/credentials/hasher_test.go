package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7PXS/AvouraAuth/internal/config"
)

func TestHashVerifyRoundTripStrict(t *testing.T) {
	h := NewHasher(config.ProfileStrict)

	stored, err := h.Hash("Secret123")
	require.NoError(t, err)

	salt, hash, ok := strings.Cut(stored, ":")
	require.True(t, ok, "stored form must be salt:hash")
	assert.Len(t, salt, 32, "16-byte salt hex encoded")
	assert.Len(t, hash, 128, "64-byte key hex encoded")

	assert.True(t, h.Verify("Secret123", stored))
	assert.False(t, h.Verify("Secret124", stored))
}

func TestHashSaltIsRandom(t *testing.T) {
	h := NewHasher(config.ProfileStrict)

	a, err := h.Hash("Secret123")
	require.NoError(t, err)
	b, err := h.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same password must not produce the same stored form twice")
}

func TestVerifyMalformedStoredForm(t *testing.T) {
	h := NewHasher(config.ProfileStrict)

	assert.False(t, h.Verify("Secret123", "no-separator"))
	assert.False(t, h.Verify("Secret123", "zz:zz"))
	assert.False(t, h.Verify("Secret123", ""))
}

func TestHashVerifyLenient(t *testing.T) {
	h := NewHasher(config.ProfileLenient)

	stored, err := h.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored, "lenient mode stores the secret unchanged")

	assert.True(t, h.Verify("pw", stored))
	assert.False(t, h.Verify("other", stored))
}
