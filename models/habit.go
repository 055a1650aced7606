package models

import "time"

// Habit is a recurring goal. CurrentCount mirrors the number of HabitLog rows
// and is incremented in the same transaction as the log insert.
type Habit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Frequency    string    `gorm:"size:16;default:'daily'" json:"frequency"` // daily | weekly | custom
	TargetCount  int       `gorm:"default:1" json:"target_count"`
	CurrentCount int       `gorm:"default:0" json:"current_count"`
	ReminderTime string    `gorm:"size:10" json:"reminder_time"` // HH:MM
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HabitLog is one completion event for a habit.
type HabitLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HabitID     uint      `gorm:"index;not null" json:"habit_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       string    `gorm:"type:text" json:"notes"`
}
