package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	def, ok := Lookup(AchStreak7)
	assert.True(t, ok)
	assert.Equal(t, "Week Warrior", def.Name)
	assert.Equal(t, "flame", def.Icon)

	_, ok = Lookup("unknown_badge")
	assert.False(t, ok)
}

func TestStreakAchievements(t *testing.T) {
	assert.Nil(t, StreakAchievements(6))
	assert.Equal(t, []string{AchStreak7}, StreakAchievements(7))
	assert.Equal(t, []string{AchStreak7}, StreakAchievements(29))
	assert.Equal(t, []string{AchStreak7, AchStreak30}, StreakAchievements(30))
}

func TestMeditationAchievements(t *testing.T) {
	assert.Equal(t, []string{AchFirstMeditation}, MeditationAchievements(1, 10))
	assert.Equal(t, []string{AchFirstMeditation, AchMeditationHour}, MeditationAchievements(6, 62))
	assert.Nil(t, MeditationAchievements(0, 0))
}

func TestWorkoutAchievements(t *testing.T) {
	assert.Nil(t, WorkoutAchievements(2))
	assert.Equal(t, []string{AchWorkout3xWeek}, WorkoutAchievements(3))
}

func TestSleepAchievements(t *testing.T) {
	assert.Nil(t, SleepAchievements(6.9))
	assert.Equal(t, []string{AchGoodSleep}, SleepAchievements(7))
	assert.Equal(t, []string{AchGoodSleep}, SleepAchievements(8.5))
}

func TestNutritionAchievements(t *testing.T) {
	assert.Nil(t, NutritionAchievements(129))
	assert.Equal(t, []string{AchProteinGoal}, NutritionAchievements(130))
}

func TestFitAchievements(t *testing.T) {
	assert.Nil(t, FitAchievements(4))
	assert.Equal(t, []string{AchFitPractitioner}, FitAchievements(5))
}
