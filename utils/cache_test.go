package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCacheGetJSONMissingKey(t *testing.T) {
	var out map[string]int
	assert.False(t, CacheGetJSON("feed:"+uuid.NewString(), &out))
	assert.Nil(t, out)
}
