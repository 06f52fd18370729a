package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, CheckPasswordHash("secret123", digest))
	assert.False(t, CheckPasswordHash("secret124", digest))
	assert.False(t, CheckPasswordHash("", digest))
}
