package models

import "time"

// FitSession records one Functional Imagery Training visualization.
type FitSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	Category        string    `gorm:"size:32;not null" json:"category"` // goal_weight | energy | confidence | health | lifestyle
	GoalDescription string    `gorm:"type:text;not null" json:"goal_description"`
	VisualSee       string    `gorm:"type:text;not null" json:"visual_see"`
	VisualHear      string    `gorm:"type:text" json:"visual_hear"`
	VisualFeel      string    `gorm:"type:text" json:"visual_feel"`
	VisualSmellTaste string   `gorm:"type:text" json:"visual_smell_taste"`
	Emotions        string    `gorm:"type:text" json:"emotions"`
	Vividness       int       `gorm:"not null" json:"vividness"` // 1-10
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
