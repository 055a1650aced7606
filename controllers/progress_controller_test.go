package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
)

func TestMoodDistribution(t *testing.T) {
	checkIns := []models.CheckIn{
		{Mood: "good"},
		{Mood: "good"},
		{Mood: "low"},
		{Mood: "struggling"},
	}

	dist := MoodDistribution(checkIns)
	assert.Equal(t, 2, dist["good"])
	assert.Equal(t, 1, dist["low"])
	assert.Equal(t, 1, dist["struggling"])
	assert.Equal(t, 0, dist["great"])
}

func TestTopEmotionsCountsAcrossCheckIns(t *testing.T) {
	checkIns := []models.CheckIn{
		{Emotions: models.JSONList{"stressed", "tired"}},
		{Emotions: models.JSONList{"stressed", "anxious"}},
		{Emotions: models.JSONList{"stressed"}},
	}

	top := TopEmotions(checkIns, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "stressed", top[0].Label)
	assert.Equal(t, 3, top[0].Count)
	// anxious and tired tie at 1, alphabetical order breaks it
	assert.Equal(t, "anxious", top[1].Label)
}

func TestTopTriggersTruncatesToN(t *testing.T) {
	checkIns := []models.CheckIn{
		{Triggers: models.JSONList{"boredom", "work", "late night", "argument", "social media", "hunger"}},
	}

	top := TopTriggers(checkIns, 5)
	assert.Len(t, top, 5)
	for _, item := range top {
		assert.Equal(t, 1, item.Count)
	}
}

func TestTopEmotionsEmpty(t *testing.T) {
	assert.Empty(t, TopEmotions(nil, 5))
}
