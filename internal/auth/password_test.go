package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("admin", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "admin", hash)

	assert.NoError(t, ComparePassword(hash, "admin"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
