package auth

import (
	"strings"
	"testing"

	"bookstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Errors(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.Error(t, err)

	// bcrypt refuses inputs longer than 72 bytes.
	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	weak, err := NewBcryptHasherWithCost(bcrypt.MinCost).Hash("StrongPass123!")
	require.NoError(t, err)

	stronger := NewBcryptHasherWithCost(bcrypt.MinCost + 1)
	assert.True(t, stronger.NeedsRehash(weak))
	assert.False(t, NewBcryptHasherWithCost(bcrypt.MinCost).NeedsRehash(weak))
	assert.False(t, stronger.NeedsRehash("invalid_hash"))
}

func TestNewBcryptHasherWithCost_Clamps(t *testing.T) {
	low := NewBcryptHasherWithCost(1).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, low.cost)

	high := NewBcryptHasherWithCost(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.MaxCost, high.cost)
}
