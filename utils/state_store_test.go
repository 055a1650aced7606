package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConsumeStateUnknownNonce(t *testing.T) {
	assert.False(t, ConsumeState(uuid.NewString()))
}
