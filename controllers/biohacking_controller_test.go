package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBiohackingCreateRejectsUnknownActivity(t *testing.T) {
	ctx, rec := newAuthedJSONContext(1, `{"activity_type":"crystal_healing"}`)
	NewBiohackingController(nil).Create(ctx)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 40132, decodeResponse(t, rec).Code)
}

func TestBiohackingCreateRequiresActivityType(t *testing.T) {
	ctx, rec := newAuthedJSONContext(1, `{"duration_minutes":20}`)
	NewBiohackingController(nil).Create(ctx)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 40131, decodeResponse(t, rec).Code)
}
