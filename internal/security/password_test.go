package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// MinCost keeps these tests fast; production uses the configured cost.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and Verify round trip", func(t *testing.T) {
		hash, err := hasher.Hash("secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret", hash)

		assert.True(t, hasher.Verify(hash, "secret"))
	})

	t.Run("Verify rejects wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("secret")
		assert.NoError(t, err)

		assert.False(t, hasher.Verify(hash, "wrong"))
	})

	t.Run("Verify rejects malformed hash", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "secret"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		hash1, err := hasher.Hash("secret")
		assert.NoError(t, err)
		hash2, err := hasher.Hash("secret")
		assert.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Run("cost below minimum falls back to default", func(t *testing.T) {
		hasher := NewBcryptHasher(0)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	})

	t.Run("cost above maximum falls back to default", func(t *testing.T) {
		hasher := NewBcryptHasher(99)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	})

	t.Run("valid cost is kept", func(t *testing.T) {
		hasher := NewBcryptHasher(12)
		assert.Equal(t, 12, hasher.cost)
	})
}
