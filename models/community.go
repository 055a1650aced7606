package models

import "time"

// CommunityPost is globally readable but individually owned. LikesCount
// mirrors the PostLike rows and is updated in the same transaction as the
// like toggle.
type CommunityPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsAnonymous bool      `gorm:"default:false" json:"is_anonymous"`
	LikesCount  int       `gorm:"default:0" json:"likes_count"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostLike joins users to the posts they liked.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like,priority:1" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like,priority:2" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
