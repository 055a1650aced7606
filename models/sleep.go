package models

import "time"

// SleepLog records one night of sleep plus the hygiene factors around it.
type SleepLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	BedTime        time.Time `gorm:"not null" json:"bed_time"`
	WakeTime       time.Time `gorm:"not null" json:"wake_time"`
	TotalHours     string    `gorm:"size:8;not null" json:"total_hours"`
	Quality        string    `gorm:"size:16" json:"quality"` // excellent | good | fair | poor
	CaffeineLate   bool      `gorm:"default:false" json:"caffeine_late"`
	ScreensBefore  bool      `gorm:"default:false" json:"screens_before"`
	RoomTemp       *int      `json:"room_temp"`
	MagnesiumTaken bool      `gorm:"default:false" json:"magnesium_taken"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}
