package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account provisioned through the upstream identity
// provider. There is no local password; OpenID is the stable external key.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OpenID      string     `gorm:"size:64;not null;uniqueIndex" json:"open_id"`
	Name        string     `gorm:"size:255" json:"name"`
	Email       string     `gorm:"size:320" json:"email"`
	LoginMethod string     `gorm:"size:64" json:"login_method"`
	Role        string     `gorm:"size:16;default:'user'" json:"role"`
	LastSignedIn *time.Time `json:"last_signed_in"`

	// Gamification state. Points only ever increase; level is a display tier
	// derived from points; longestStreak >= currentStreak always holds.
	Points          int        `gorm:"default:0" json:"points"`
	Level           int        `gorm:"default:1" json:"level"`
	CurrentStreak   int        `gorm:"default:0" json:"current_streak"`
	LongestStreak   int        `gorm:"default:0" json:"longest_streak"`
	LastCheckInDate *time.Time `json:"last_check_in_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
