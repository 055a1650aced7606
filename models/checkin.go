package models

import "time"

// CheckIn is a daily mood and hunger snapshot. The UI submits at most one per
// calendar day; the table itself does not enforce that, the streak logic just
// treats same-day repeats as neutral.
type CheckIn struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Mood             string    `gorm:"size:16;not null" json:"mood"`
	MoodEmoji        string    `gorm:"size:10" json:"mood_emoji"`
	HungerLevel      int       `gorm:"not null" json:"hunger_level"` // 1-10 scale
	Emotions         JSONList  `gorm:"type:json" json:"emotions"`
	Triggers         JSONList  `gorm:"type:json" json:"triggers"`
	Notes            string    `gorm:"type:text" json:"notes"`
	IsEmotionalEating bool     `gorm:"default:false" json:"is_emotional_eating"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}
