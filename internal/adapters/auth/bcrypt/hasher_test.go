package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gobcrypt "golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(gobcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", digest)

	assert.True(t, h.Verify("s3cret", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("s3cret", "not-a-digest"))
}

func TestNewHasher_CostOutOfRangeFallsBack(t *testing.T) {
	h := NewHasher(99)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, h.Verify("s3cret", digest))
}
