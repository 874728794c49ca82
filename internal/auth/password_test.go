package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("12345678")
	assert.NoError(t, err)
	assert.NotEqual(t, "12345678", digest)

	assert.True(t, hasher.Verify("12345678", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
	assert.False(t, hasher.Verify("12345678", "not-a-bcrypt-digest"))
}

func TestPasswordHasher_DigestsDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("12345678")
	assert.NoError(t, err)
	second, err := hasher.Hash("12345678")
	assert.NoError(t, err)

	// bcrypt salts every digest
	assert.NotEqual(t, first, second)
}
