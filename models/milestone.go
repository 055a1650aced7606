package models

import "time"

// Milestone is a self-defined long-term target with an optional reward.
type Milestone struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	MilestoneName string     `gorm:"size:255;not null" json:"milestone_name"`
	TargetValue   string     `gorm:"size:100" json:"target_value"`
	CurrentValue  string     `gorm:"size:100" json:"current_value"`
	Reward        string     `gorm:"size:255" json:"reward"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
