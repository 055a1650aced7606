package models

import "time"

// Achievement is an immutable unlock record. The composite unique index makes
// "at most one row per (user, type)" a storage guarantee, so concurrent
// unlock checks cannot create duplicates.
type Achievement struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_user_achievement,priority:1" json:"user_id"`
	AchievementType string    `gorm:"size:100;not null;uniqueIndex:idx_user_achievement,priority:2" json:"achievement_type"`
	AchievementName string    `gorm:"size:255;not null" json:"achievement_name"`
	Description     string    `gorm:"type:text" json:"description"`
	IconName        string    `gorm:"size:100" json:"icon_name"`
	EarnedAt        time.Time `json:"earned_at"`
}
