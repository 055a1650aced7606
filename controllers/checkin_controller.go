package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// CheckInController handles daily mood and hunger check-ins, the anchor of
// the streak system.
type CheckInController struct {
	db *gorm.DB
}

// NewCheckInController creates a new controller instance.
func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{db: db}
}

var validMoods = map[string]bool{
	"great": true, "good": true, "okay": true, "low": true, "struggling": true,
}

// Create records a check-in, updates the streak, and awards points. Multiple
// check-ins on the same day are stored but leave the streak untouched.
func (c *CheckInController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Mood              string   `json:"mood" binding:"required"`
		MoodEmoji         string   `json:"mood_emoji"`
		HungerLevel       int      `json:"hunger_level" binding:"required,min=1,max=10"`
		Emotions          []string `json:"emotions"`
		Triggers          []string `json:"triggers"`
		Notes             string   `json:"notes"`
		IsEmotionalEating bool     `json:"is_emotional_eating"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
		return
	}
	if !validMoods[req.Mood] {
		utils.Error(ctx, http.StatusBadRequest, 40012, "invalid mood")
		return
	}

	now := time.Now()
	checkIn := models.CheckIn{
		UserID:            userID,
		Mood:              req.Mood,
		MoodEmoji:         req.MoodEmoji,
		HungerLevel:       req.HungerLevel,
		Emotions:          models.JSONList(req.Emotions),
		Triggers:          models.JSONList(req.Triggers),
		Notes:             utils.Sanitize(req.Notes),
		IsEmotionalEating: req.IsEmotionalEating,
		CreatedAt:         now,
	}

	var streak gamification.StreakUpdate
	err := c.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		if err := tx.Create(&checkIn).Error; err != nil {
			return err
		}

		streak = gamification.NextStreak(user.LastCheckInDate, now, user.CurrentStreak, user.LongestStreak)

		user.CurrentStreak = streak.Current
		user.LongestStreak = streak.Longest
		user.LastCheckInDate = &now
		user.Points += gamification.CheckInPoints
		user.Level = gamification.LevelForPoints(user.Points)

		return tx.Save(&user).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to record check-in")
		return
	}

	newAchievements, err := grantAchievements(c.db, userID, gamification.StreakAchievements(streak.Current))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("streak achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"check_in":         checkIn,
		"points_awarded":   gamification.CheckInPoints,
		"current_streak":   streak.Current,
		"longest_streak":   streak.Longest,
		"new_achievements": newAchievements,
	})
}

// List returns the user's check-ins, newest first.
func (c *CheckInController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var checkIns []models.CheckIn
	if err := c.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&checkIns).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load check-ins")
		return
	}

	utils.Success(ctx, checkIns)
}

// Today returns the latest check-in from the current calendar day, if any.
func (c *CheckInController) Today(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	todayStart := dayStart(time.Now())

	var checkIn models.CheckIn
	err := c.db.Where("user_id = ? AND created_at >= ?", userID, todayStart).
		Order("created_at DESC").
		First(&checkIn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Success(ctx, nil)
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to load check-in")
		return
	}

	utils.Success(ctx, checkIn)
}
