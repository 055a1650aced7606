package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueUint(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, UniqueUint([]uint{3, 1, 3, 2, 1}))
	assert.Equal(t, []uint{}, UniqueUint(nil))
	assert.Equal(t, []uint{5}, UniqueUint([]uint{5, 5, 5}))
}
