package models

import "time"

// Challenge is a time-boxed community goal, seeded by admins.
type Challenge struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	ChallengeType string    `gorm:"size:100;not null" json:"challenge_type"`
	TargetCount   int       `gorm:"not null" json:"target_count"`
	PointsReward  int       `gorm:"not null" json:"points_reward"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	EndDate       time.Time `gorm:"not null" json:"end_date"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// UserChallenge tracks one user's progress inside a challenge.
type UserChallenge struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	ChallengeID     uint       `gorm:"index;not null" json:"challenge_id"`
	CurrentProgress int        `gorm:"default:0" json:"current_progress"`
	Completed       bool       `gorm:"default:false" json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	JoinedAt        time.Time  `json:"joined_at"`

	Challenge Challenge `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"challenge"`
}
