package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	digest, err := Password("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", digest)

	assert.True(t, Verify("secret1", digest))
	assert.False(t, Verify("wrong", digest))
}

func TestPasswordUniqueSalts(t *testing.T) {
	first, err := Password("secret1")
	require.NoError(t, err)
	second, err := Password("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedDigest(t *testing.T) {
	assert.False(t, Verify("secret1", "not-a-bcrypt-digest"))
	assert.False(t, Verify("secret1", ""))
}
