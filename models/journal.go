package models

import "time"

// JournalEntry is a free-form reflection, optionally tagged with the same
// mood/emotion/trigger vocabulary as check-ins.
type JournalEntry struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Title            string    `gorm:"size:255" json:"title"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	Mood             string    `gorm:"size:16" json:"mood"`
	Emotions         JSONList  `gorm:"type:json" json:"emotions"`
	Triggers         JSONList  `gorm:"type:json" json:"triggers"`
	ReflectionPrompt string    `gorm:"type:text" json:"reflection_prompt"`
	Insights         string    `gorm:"type:text" json:"insights"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
