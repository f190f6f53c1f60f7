package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", TruncateRunes("hello", 0))
	assert.Equal(t, "hel", TruncateRunes("hello", 3))
	assert.Equal(t, "hello", TruncateRunes("hello", 5))
	assert.Equal(t, "hello", TruncateRunes("hello", 50))
	assert.Equal(t, "żół", TruncateRunes("żółw", 3))
}
