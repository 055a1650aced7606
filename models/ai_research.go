package models

import "time"

// AiResearchEntry archives a wellness research question with the generated
// answer.
type AiResearchEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Query     string    `gorm:"type:text;not null" json:"query"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	Category  string    `gorm:"size:100" json:"category"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
