package auth

import (
	"testing"

	"mercado/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Admin: &config.AdminConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin", hash)

	assert.True(t, hasher.Check("admin", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("admin", "not-a-bcrypt-hash"))
}
