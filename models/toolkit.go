package models

import "time"

// ToolkitUsage records one use of an emergency coping tool.
type ToolkitUsage struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	ToolType          string    `gorm:"size:100;not null" json:"tool_type"`
	UrgencyLevel      *int      `json:"urgency_level"`      // 1-10
	HelpfulnessRating *int      `json:"helpfulness_rating"` // 1-5
	Notes             string    `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
}
