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

// HabitController manages recurring habits and their completion logs.
type HabitController struct {
	db *gorm.DB
}

// NewHabitController creates a new controller instance.
func NewHabitController(db *gorm.DB) *HabitController {
	return &HabitController{db: db}
}

var validFrequencies = map[string]bool{"daily": true, "weekly": true, "custom": true}

// Create registers a new habit.
func (h *HabitController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Frequency    string `json:"frequency"`
		TargetCount  int    `json:"target_count"`
		ReminderTime string `json:"reminder_time"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "invalid request payload")
		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	if !validFrequencies[frequency] {
		utils.Error(ctx, http.StatusBadRequest, 40062, "invalid frequency")
		return
	}
	targetCount := req.TargetCount
	if targetCount <= 0 {
		targetCount = 1
	}

	habit := models.Habit{
		UserID:       userID,
		Name:         utils.Sanitize(req.Name),
		Description:  utils.Sanitize(req.Description),
		Frequency:    frequency,
		TargetCount:  targetCount,
		ReminderTime: req.ReminderTime,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := h.db.Create(&habit).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to create habit")
		return
	}

	utils.Success(ctx, habit)
}

// List returns the user's active habits. Pass all=true to include retired ones.
func (h *HabitController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	query := h.db.Where("user_id = ?", userID)
	if ctx.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var habits []models.Habit
	if err := query.
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load habits")
		return
	}

	utils.Success(ctx, habits)
}

// Complete logs a completion, bumps the habit counter in the same
// transaction, and awards points.
func (h *HabitController) Complete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	habitID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid habit id")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	_ = ctx.ShouldBindJSON(&req)

	habitLog := models.HabitLog{
		HabitID:     habitID,
		UserID:      userID,
		CompletedAt: time.Now(),
		Notes:       utils.Sanitize(req.Notes),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var habit models.Habit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&habit, habitID).Error; err != nil {
			return err
		}
		if habit.UserID != userID {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Create(&habitLog).Error; err != nil {
			return err
		}

		habit.CurrentCount++
		habit.UpdatedAt = time.Now()
		if err := tx.Save(&habit).Error; err != nil {
			return err
		}

		return awardPoints(tx, userID, gamification.HabitCompletionPoints)
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40461, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to complete habit")
		return
	}

	utils.Success(ctx, gin.H{
		"log":            habitLog,
		"points_awarded": gamification.HabitCompletionPoints,
	})
}

// Update edits mutable fields including active state.
func (h *HabitController) Update(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	habitID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid habit id")
		return
	}

	var req struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Frequency    string `json:"frequency"`
		TargetCount  *int   `json:"target_count"`
		ReminderTime string `json:"reminder_time"`
		IsActive     *bool  `json:"is_active"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "invalid request payload")
		return
	}

	var habit models.Habit
	if err := h.db.First(&habit, habitID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40461, "habit not found")
		return
	}
	if habit.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40361, "not your habit")
		return
	}

	if req.Name != "" {
		habit.Name = utils.Sanitize(req.Name)
	}
	if req.Description != "" {
		habit.Description = utils.Sanitize(req.Description)
	}
	if req.Frequency != "" {
		if !validFrequencies[req.Frequency] {
			utils.Error(ctx, http.StatusBadRequest, 40062, "invalid frequency")
			return
		}
		habit.Frequency = req.Frequency
	}
	if req.TargetCount != nil && *req.TargetCount > 0 {
		habit.TargetCount = *req.TargetCount
	}
	if req.ReminderTime != "" {
		habit.ReminderTime = req.ReminderTime
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}
	habit.UpdatedAt = time.Now()

	if err := h.db.Save(&habit).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to update habit")
		return
	}

	utils.Success(ctx, habit)
}

// Delete removes an owned habit and its logs.
func (h *HabitController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	habitID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid habit id")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("habit_id = ?", habitID).Delete(&models.HabitLog{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40461, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50065, "failed to delete habit")
		return
	}

	utils.Success(ctx, gin.H{"message": "habit deleted"})
}
