package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeditationCompleteRejectsStressOutOfRange(t *testing.T) {
	cases := []string{
		`{"meditation_type":"breathing","duration_minutes":10,"stress_before":99}`,
		`{"meditation_type":"breathing","duration_minutes":10,"stress_after":11}`,
		`{"meditation_type":"breathing","duration_minutes":10,"stress_before":-2}`,
	}
	for _, body := range cases {
		ctx, rec := newAuthedJSONContext(1, body)
		NewMeditationController(nil).Complete(ctx)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 40041, decodeResponse(t, rec).Code)
	}
}

func TestMeditationCompleteRejectsMissingDuration(t *testing.T) {
	ctx, rec := newAuthedJSONContext(1, `{"meditation_type":"breathing"}`)
	NewMeditationController(nil).Complete(ctx)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
