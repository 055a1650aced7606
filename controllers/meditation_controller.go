package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// MeditationController records guided meditation sessions.
type MeditationController struct {
	db *gorm.DB
}

// NewMeditationController creates a new controller instance.
func NewMeditationController(db *gorm.DB) *MeditationController {
	return &MeditationController{db: db}
}

// Complete logs a finished session. Points scale with duration, capped at 30.
func (m *MeditationController) Complete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		MeditationType  string `json:"meditation_type" binding:"required"`
		DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
		StressBefore    *int   `json:"stress_before" binding:"omitempty,min=1,max=10"`
		StressAfter     *int   `json:"stress_after" binding:"omitempty,min=1,max=10"`
		Notes           string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid request payload")
		return
	}

	session := models.MeditationSession{
		UserID:          userID,
		MeditationType:  req.MeditationType,
		DurationMinutes: req.DurationMinutes,
		Completed:       true,
		StressBefore:    req.StressBefore,
		StressAfter:     req.StressAfter,
		Notes:           utils.Sanitize(req.Notes),
		CreatedAt:       time.Now(),
	}

	points := gamification.MeditationPoints(req.DurationMinutes)

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, points)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to record meditation")
		return
	}

	var sessionCount int64
	var totalMinutes int64
	_ = m.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&sessionCount).Error
	_ = m.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&totalMinutes).Error

	newAchievements, err := grantAchievements(m.db, userID,
		gamification.MeditationAchievements(int(sessionCount), int(totalMinutes)))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("meditation achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"session":          session,
		"points_awarded":   points,
		"new_achievements": newAchievements,
	})
}

// List returns the user's sessions, newest first.
func (m *MeditationController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var sessions []models.MeditationSession
	if err := m.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to load meditations")
		return
	}

	utils.Success(ctx, sessions)
}

// Stats summarizes lifetime practice.
func (m *MeditationController) Stats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var sessionCount int64
	var totalMinutes int64
	if err := m.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&sessionCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to load meditation stats")
		return
	}
	if err := m.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&totalMinutes).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to load meditation stats")
		return
	}

	utils.Success(ctx, gin.H{
		"total_sessions": sessionCount,
		"total_minutes":  totalMinutes,
	})
}
