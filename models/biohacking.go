package models

import "time"

// BiohackingLog records one recovery or light-exposure activity.
type BiohackingLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ActivityType    string    `gorm:"size:32;not null" json:"activity_type"` // morning_sunlight | cold_exposure | sauna | red_light | neat_steps | grounding
	DurationMinutes *int      `json:"duration_minutes"`
	ColdTemp        *int      `json:"cold_temp"`
	SaunaTemp       *int      `json:"sauna_temp"`
	StepCount       *int      `json:"step_count"`
	StandingMinutes *int      `json:"standing_minutes"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
