package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
)

func TestSleepStats(t *testing.T) {
	logs := []models.SleepLog{
		{TotalHours: "7.5", Quality: "good"},
		{TotalHours: "6", Quality: "fair"},
		{TotalHours: "8.25", Quality: "good"},
		{TotalHours: "bad-data"},
	}

	stats := SleepStats(logs)
	assert.Equal(t, 4, stats["total_nights"])
	assert.Equal(t, 2, stats["good_nights"])
	assert.InDelta(t, (7.5+6+8.25)/3, stats["average_hours"], 0.001)

	qualities, ok := stats["quality_distribution"].(map[string]int)
	assert.True(t, ok)
	assert.Equal(t, 2, qualities["good"])
	assert.Equal(t, 1, qualities["fair"])
}

func TestSleepStatsEmpty(t *testing.T) {
	stats := SleepStats(nil)
	assert.Equal(t, 0, stats["total_nights"])
	assert.Equal(t, 0.0, stats["average_hours"])
}
