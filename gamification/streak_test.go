package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestNextStreakFirstCheckIn(t *testing.T) {
	got := NextStreak(nil, day(2026, 3, 1), 0, 0)
	assert.Equal(t, StreakUpdate{Current: 1, Longest: 1}, got)
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	last := day(2026, 3, 1)
	got := NextStreak(&last, day(2026, 3, 2), 4, 6)
	assert.Equal(t, StreakUpdate{Current: 5, Longest: 6}, got)
}

func TestNextStreakExtendsLongest(t *testing.T) {
	last := day(2026, 3, 1)
	got := NextStreak(&last, day(2026, 3, 2), 6, 6)
	assert.Equal(t, StreakUpdate{Current: 7, Longest: 7}, got)
}

func TestNextStreakSameDayHolds(t *testing.T) {
	last := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	got := NextStreak(&last, time.Date(2026, 3, 2, 23, 45, 0, 0, time.UTC), 4, 9)
	assert.Equal(t, StreakUpdate{Current: 4, Longest: 9}, got)
}

func TestNextStreakGapResets(t *testing.T) {
	last := day(2026, 3, 1)
	got := NextStreak(&last, day(2026, 3, 4), 12, 12)
	assert.Equal(t, StreakUpdate{Current: 1, Longest: 12}, got)
}

func TestNextStreakLateNightToEarlyMorning(t *testing.T) {
	last := time.Date(2026, 3, 1, 23, 58, 0, 0, time.UTC)
	got := NextStreak(&last, time.Date(2026, 3, 2, 0, 5, 0, 0, time.UTC), 2, 2)
	assert.Equal(t, StreakUpdate{Current: 3, Longest: 3}, got, "calendar days, not 24h windows")
}
