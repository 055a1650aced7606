package models

import "time"

// Supplement is one item on a user's supplement protocol.
type Supplement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Dosage    string    `gorm:"size:100" json:"dosage"`
	Tier      string    `gorm:"size:16" json:"tier"`       // tier1 | tier2 | tier3
	Frequency string    `gorm:"size:32" json:"frequency"`  // daily | twice_daily | weekly | as_needed
	TimeOfDay string    `gorm:"size:32" json:"time_of_day"` // morning | afternoon | evening | bedtime | with_meals
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplementLog marks one intake of a supplement.
type SupplementLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SupplementID uint      `gorm:"index;not null" json:"supplement_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	TakenAt      time.Time `gorm:"index" json:"taken_at"`
}
