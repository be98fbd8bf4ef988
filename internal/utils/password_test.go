package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}
