package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeditationPoints(t *testing.T) {
	assert.Equal(t, 10, MeditationPoints(5))
	assert.Equal(t, 30, MeditationPoints(15))
	assert.Equal(t, 30, MeditationPoints(60), "cap holds for long sessions")
	assert.Equal(t, 0, MeditationPoints(0))
	assert.Equal(t, 0, MeditationPoints(-3))
}

func TestWorkoutPoints(t *testing.T) {
	assert.Equal(t, 45, WorkoutPoints("strength", 45), "25 base + 4 full blocks of 10")
	assert.Equal(t, 15, WorkoutPoints("walking", 9))
	assert.Equal(t, 20, WorkoutPoints("rucking", 10))
	assert.Equal(t, 30, WorkoutPoints("nordic", 30))
	assert.Equal(t, 25, WorkoutPoints("strength", 0))
	assert.Equal(t, 15, WorkoutPoints("other", -20))
}

func TestBiohackingPoints(t *testing.T) {
	assert.Equal(t, 10, BiohackingPoints("morning_sunlight"))
	assert.Equal(t, 15, BiohackingPoints("cold_exposure"))
	assert.Equal(t, 15, BiohackingPoints("sauna"))
	assert.Equal(t, 10, BiohackingPoints("red_light"))
	assert.Equal(t, 5, BiohackingPoints("neat_steps"))
	assert.Equal(t, 5, BiohackingPoints("grounding"))
	assert.Equal(t, 5, BiohackingPoints("something_new"))
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(99))
	assert.Equal(t, 2, LevelForPoints(100))
	assert.Equal(t, 3, LevelForPoints(250))
	assert.Equal(t, 11, LevelForPoints(1000))
	assert.Equal(t, 1, LevelForPoints(-50))
}
