package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolkitLogUsageRejectsOutOfRangeRatings(t *testing.T) {
	cases := []string{
		`{"tool_type":"breathing","urgency_level":11}`,
		`{"tool_type":"breathing","urgency_level":-1}`,
		`{"tool_type":"breathing","helpfulness_rating":6}`,
	}
	for _, body := range cases {
		ctx, rec := newAuthedJSONContext(1, body)
		NewToolkitController(nil).LogUsage(ctx)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 40081, decodeResponse(t, rec).Code)
	}
}

func TestToolkitLogUsageRequiresToolType(t *testing.T) {
	ctx, rec := newAuthedJSONContext(1, `{"urgency_level":5}`)
	NewToolkitController(nil).LogUsage(ctx)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
