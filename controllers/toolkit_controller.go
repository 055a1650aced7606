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

// ToolkitController records uses of the emergency coping toolkit.
type ToolkitController struct {
	db *gorm.DB
}

// NewToolkitController creates a new controller instance.
func NewToolkitController(db *gorm.DB) *ToolkitController {
	return &ToolkitController{db: db}
}

// LogUsage records one tool use, awards points, and unlocks the first-use
// badge.
func (t *ToolkitController) LogUsage(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		ToolType          string `json:"tool_type" binding:"required"`
		UrgencyLevel      *int   `json:"urgency_level" binding:"omitempty,min=1,max=10"`
		HelpfulnessRating *int   `json:"helpfulness_rating" binding:"omitempty,min=1,max=5"`
		Notes             string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40081, "invalid request payload")
		return
	}

	usage := models.ToolkitUsage{
		UserID:            userID,
		ToolType:          req.ToolType,
		UrgencyLevel:      req.UrgencyLevel,
		HelpfulnessRating: req.HelpfulnessRating,
		Notes:             utils.Sanitize(req.Notes),
		CreatedAt:         time.Now(),
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.ToolkitUsagePoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to record toolkit usage")
		return
	}

	newAchievements, err := grantAchievements(t.db, userID, []string{gamification.AchFirstToolkit})
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("toolkit achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"usage":            usage,
		"points_awarded":   gamification.ToolkitUsagePoints,
		"new_achievements": newAchievements,
	})
}

// History returns the user's toolkit usage, newest first.
func (t *ToolkitController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var usages []models.ToolkitUsage
	if err := t.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&usages).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50082, "failed to load toolkit history")
		return
	}

	utils.Success(ctx, usages)
}
