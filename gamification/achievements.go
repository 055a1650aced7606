package gamification

// Achievement type identifiers. These are persisted, so they never change.
const (
	AchStreak7         = "streak_7"
	AchStreak30        = "streak_30"
	AchFirstJournal    = "first_journal"
	AchFirstMeditation = "first_meditation"
	AchMeditationHour  = "meditation_hour"
	AchFirstToolkit    = "first_toolkit"
	AchWorkout3xWeek   = "workout_3x_week"
	AchGoodSleep       = "good_sleep"
	AchProteinGoal     = "protein_goal"
	AchFitPractitioner = "fit_practitioner"
)

// AchievementDef describes one unlockable badge.
type AchievementDef struct {
	Type        string
	Name        string
	Description string
	Icon        string
}

var catalog = map[string]AchievementDef{
	AchStreak7:         {AchStreak7, "Week Warrior", "Checked in 7 days in a row", "flame"},
	AchStreak30:        {AchStreak30, "Monthly Master", "Checked in 30 days in a row", "trophy"},
	AchFirstJournal:    {AchFirstJournal, "Reflective Writer", "Wrote your first journal entry", "pencil"},
	AchFirstMeditation: {AchFirstMeditation, "Mindful Beginner", "Completed your first meditation", "sparkles"},
	AchMeditationHour:  {AchMeditationHour, "Hour of Peace", "Meditated for 60 total minutes", "clock"},
	AchFirstToolkit:    {AchFirstToolkit, "Crisis Navigator", "Used a crisis toolkit tool", "shield"},
	AchWorkout3xWeek:   {AchWorkout3xWeek, "Consistent Mover", "Worked out 3 times in a week", "dumbbell"},
	AchGoodSleep:       {AchGoodSleep, "Well Rested", "Logged 7+ hours of sleep", "moon"},
	AchProteinGoal:     {AchProteinGoal, "Protein Champion", "Hit 130g of protein in a day", "beef"},
	AchFitPractitioner: {AchFitPractitioner, "Visualization Master", "Completed 5 FIT sessions", "eye"},
}

// Lookup returns the catalog entry for an achievement type.
func Lookup(achType string) (AchievementDef, bool) {
	def, ok := catalog[achType]
	return def, ok
}

// StreakAchievements returns the streak badges earned at the given length.
func StreakAchievements(currentStreak int) []string {
	var earned []string
	if currentStreak >= 7 {
		earned = append(earned, AchStreak7)
	}
	if currentStreak >= 30 {
		earned = append(earned, AchStreak30)
	}
	return earned
}

// MeditationAchievements returns the badges earned after a completed session,
// given the lifetime session count and total minutes including this one.
func MeditationAchievements(sessionCount int, totalMinutes int) []string {
	var earned []string
	if sessionCount >= 1 {
		earned = append(earned, AchFirstMeditation)
	}
	if totalMinutes >= 60 {
		earned = append(earned, AchMeditationHour)
	}
	return earned
}

// WorkoutAchievements returns badges for the weekly workout count.
func WorkoutAchievements(workoutsThisWeek int) []string {
	if workoutsThisWeek >= 3 {
		return []string{AchWorkout3xWeek}
	}
	return nil
}

// SleepAchievements returns badges for a night's total hours.
func SleepAchievements(totalHours float64) []string {
	if totalHours >= 7 {
		return []string{AchGoodSleep}
	}
	return nil
}

// NutritionAchievements returns badges for a day's protein grams.
func NutritionAchievements(proteinGrams int) []string {
	if proteinGrams >= 130 {
		return []string{AchProteinGoal}
	}
	return nil
}

// FitAchievements returns badges for the lifetime FIT session count.
func FitAchievements(sessionCount int) []string {
	if sessionCount >= 5 {
		return []string{AchFitPractitioner}
	}
	return nil
}
