// Package gamification holds the pure reward rules: fixed point values per
// logged action, the check-in streak transition, the level tier derivation,
// and the achievement catalog with its unlock thresholds. Nothing in this
// package touches storage; controllers feed it aggregates and persist what it
// returns.
package gamification

// Fixed point values for actions whose reward does not depend on the payload.
const (
	CheckInPoints             = 10
	JournalEntryPoints        = 15
	ChatMessagePoints         = 5
	CommunityPostPoints       = 10
	ToolkitUsagePoints        = 5
	HabitCompletionPoints     = 5
	SupplementIntakePoints    = 2
	SleepLogPoints            = 10
	NutritionLogPoints        = 10
	BodyMetricPoints          = 15
	FitSessionPoints          = 15
	MilestoneCompletionPoints = 50
)

// MeditationPoints rewards 2 points per minute, capped at 30.
func MeditationPoints(durationMinutes int) int {
	points := durationMinutes * 2
	if points > 30 {
		return 30
	}
	if points < 0 {
		return 0
	}
	return points
}

// WorkoutPoints rewards a base by workout type plus 5 per full 10 minutes.
func WorkoutPoints(workoutType string, durationMinutes int) int {
	base := 15
	if workoutType == "strength" {
		base = 25
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	return base + durationMinutes/10*5
}

var biohackingPoints = map[string]int{
	"morning_sunlight": 10,
	"cold_exposure":    15,
	"sauna":            15,
	"red_light":        10,
	"neat_steps":       5,
	"grounding":        5,
}

// BiohackingPoints returns the reward for an activity, defaulting to 5 for
// types outside the known map.
func BiohackingPoints(activityType string) int {
	if p, ok := biohackingPoints[activityType]; ok {
		return p
	}
	return 5
}

// LevelForPoints derives the display tier: one level per 100 points, starting
// at level 1.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/100 + 1
}
