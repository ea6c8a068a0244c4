package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	require.NoError(t, err)
	assert.NotEqual(t, "matkhau123", hash)

	assert.True(t, CheckPasswordHash("matkhau123", hash))
	assert.False(t, CheckPasswordHash("sai-mat-khau", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("matkhau123")
	require.NoError(t, err)
	second, err := HashPassword("matkhau123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
