package models

import "time"

// Workout is one logged exercise session of any type.
type Workout struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	WorkoutType     string    `gorm:"size:32;not null" json:"workout_type"` // strength | walking | incline | rucking | nordic | other
	Name            string    `gorm:"size:255" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	DistanceMiles   string    `gorm:"size:16" json:"distance_miles"`
	InclinePercent  *int      `json:"incline_percent"`
	RuckWeightLbs   *int      `json:"ruck_weight_lbs"`
	AvgHeartRate    *int      `json:"avg_heart_rate"`
	Exercises       string    `gorm:"type:json" json:"exercises"` // JSON array of {name, sets, reps, weight}
	CaloriesBurned  *int      `json:"calories_burned"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
