package models

import "time"

// MeditationSession records one completed guided practice.
type MeditationSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	MeditationType  string    `gorm:"size:100;not null" json:"meditation_type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Completed       bool      `gorm:"default:true" json:"completed"`
	StressBefore    *int      `json:"stress_before"` // 1-10
	StressAfter     *int      `json:"stress_after"`  // 1-10
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
