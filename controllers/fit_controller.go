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

// FitController records Functional Imagery Training visualization sessions.
type FitController struct {
	db *gorm.DB
}

// NewFitController creates a new controller instance.
func NewFitController(db *gorm.DB) *FitController {
	return &FitController{db: db}
}

var validFitCategories = map[string]bool{
	"goal_weight": true, "energy": true, "confidence": true,
	"health": true, "lifestyle": true,
}

// Create logs a session. The fifth session unlocks Visualization Master.
func (f *FitController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Category         string `json:"category" binding:"required"`
		GoalDescription  string `json:"goal_description" binding:"required"`
		VisualSee        string `json:"visual_see" binding:"required"`
		VisualHear       string `json:"visual_hear"`
		VisualFeel       string `json:"visual_feel"`
		VisualSmellTaste string `json:"visual_smell_taste"`
		Emotions         string `json:"emotions"`
		Vividness        int    `json:"vividness" binding:"required,min=1,max=10"`
		Notes            string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40181, "invalid request payload")
		return
	}
	if !validFitCategories[req.Category] {
		utils.Error(ctx, http.StatusBadRequest, 40182, "invalid category")
		return
	}

	session := models.FitSession{
		UserID:           userID,
		Category:         req.Category,
		GoalDescription:  utils.Sanitize(req.GoalDescription),
		VisualSee:        utils.Sanitize(req.VisualSee),
		VisualHear:       utils.Sanitize(req.VisualHear),
		VisualFeel:       utils.Sanitize(req.VisualFeel),
		VisualSmellTaste: utils.Sanitize(req.VisualSmellTaste),
		Emotions:         utils.Sanitize(req.Emotions),
		Vividness:        req.Vividness,
		Notes:            utils.Sanitize(req.Notes),
		CreatedAt:        time.Now(),
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.FitSessionPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50181, "failed to record session")
		return
	}

	var sessionCount int64
	_ = f.db.Model(&models.FitSession{}).
		Where("user_id = ?", userID).
		Count(&sessionCount).Error

	newAchievements, err := grantAchievements(f.db, userID, gamification.FitAchievements(int(sessionCount)))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("fit achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"session":          session,
		"points_awarded":   gamification.FitSessionPoints,
		"new_achievements": newAchievements,
	})
}

// List returns sessions, newest first, optionally filtered by category.
func (f *FitController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	query := f.db.Where("user_id = ?", userID)
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var sessions []models.FitSession
	if err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50182, "failed to load sessions")
		return
	}

	utils.Success(ctx, sessions)
}
