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

// BiohackingController logs recovery and light-exposure activities.
type BiohackingController struct {
	db *gorm.DB
}

// NewBiohackingController creates a new controller instance.
func NewBiohackingController(db *gorm.DB) *BiohackingController {
	return &BiohackingController{db: db}
}

var validBiohackingActivities = map[string]bool{
	"morning_sunlight": true, "cold_exposure": true, "sauna": true,
	"red_light": true, "neat_steps": true, "grounding": true,
}

// Create logs an activity; points depend on the activity type.
func (b *BiohackingController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		ActivityType    string `json:"activity_type" binding:"required"`
		DurationMinutes *int   `json:"duration_minutes"`
		ColdTemp        *int   `json:"cold_temp"`
		SaunaTemp       *int   `json:"sauna_temp"`
		StepCount       *int   `json:"step_count"`
		StandingMinutes *int   `json:"standing_minutes"`
		Notes           string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40131, "invalid request payload")
		return
	}
	if !validBiohackingActivities[req.ActivityType] {
		utils.Error(ctx, http.StatusBadRequest, 40132, "invalid activity type")
		return
	}

	entry := models.BiohackingLog{
		UserID:          userID,
		ActivityType:    req.ActivityType,
		DurationMinutes: req.DurationMinutes,
		ColdTemp:        req.ColdTemp,
		SaunaTemp:       req.SaunaTemp,
		StepCount:       req.StepCount,
		StandingMinutes: req.StandingMinutes,
		Notes:           utils.Sanitize(req.Notes),
		CreatedAt:       time.Now(),
	}

	points := gamification.BiohackingPoints(req.ActivityType)

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, points)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50131, "failed to record activity")
		return
	}

	utils.Success(ctx, gin.H{
		"log":            entry,
		"points_awarded": points,
	})
}

// List returns activities, newest first, optionally filtered by type.
func (b *BiohackingController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	query := b.db.Where("user_id = ?", userID)
	if activityType := ctx.Query("activity_type"); activityType != "" {
		query = query.Where("activity_type = ?", activityType)
	}

	var logs []models.BiohackingLog
	if err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50132, "failed to load activities")
		return
	}

	utils.Success(ctx, logs)
}

// Today returns activities logged since local midnight.
func (b *BiohackingController) Today(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var logs []models.BiohackingLog
	if err := b.db.Where("user_id = ? AND created_at >= ?", userID, dayStart(time.Now())).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50133, "failed to load activities")
		return
	}

	utils.Success(ctx, logs)
}
