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

// MilestoneController manages self-defined long-term targets.
type MilestoneController struct {
	db *gorm.DB
}

// NewMilestoneController creates a new controller instance.
func NewMilestoneController(db *gorm.DB) *MilestoneController {
	return &MilestoneController{db: db}
}

// Create registers a milestone.
func (m *MilestoneController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		MilestoneName string `json:"milestone_name" binding:"required"`
		TargetValue   string `json:"target_value"`
		CurrentValue  string `json:"current_value"`
		Reward        string `json:"reward"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40161, "invalid request payload")
		return
	}

	milestone := models.Milestone{
		UserID:        userID,
		MilestoneName: utils.Sanitize(req.MilestoneName),
		TargetValue:   req.TargetValue,
		CurrentValue:  req.CurrentValue,
		Reward:        utils.Sanitize(req.Reward),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := m.db.Create(&milestone).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50161, "failed to create milestone")
		return
	}

	utils.Success(ctx, milestone)
}

// List returns milestones, incomplete first.
func (m *MilestoneController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var milestones []models.Milestone
	if err := m.db.Where("user_id = ?", userID).
		Order("completed ASC, created_at DESC").
		Find(&milestones).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50162, "failed to load milestones")
		return
	}

	utils.Success(ctx, milestones)
}

// UpdateProgress moves the current value toward the target.
func (m *MilestoneController) UpdateProgress(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	milestoneID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40162, "invalid milestone id")
		return
	}

	var req struct {
		CurrentValue string `json:"current_value" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40161, "invalid request payload")
		return
	}

	var milestone models.Milestone
	if err := m.db.First(&milestone, milestoneID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40462, "milestone not found")
		return
	}
	if milestone.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40362, "not your milestone")
		return
	}

	milestone.CurrentValue = req.CurrentValue
	milestone.UpdatedAt = time.Now()
	if err := m.db.Save(&milestone).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50163, "failed to update milestone")
		return
	}

	utils.Success(ctx, milestone)
}

// Complete marks a milestone done and awards the completion bonus, once.
func (m *MilestoneController) Complete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	milestoneID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40162, "invalid milestone id")
		return
	}

	var milestone models.Milestone
	var awarded int
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&milestone, milestoneID).Error; err != nil {
			return err
		}
		if milestone.UserID != userID {
			return gorm.ErrRecordNotFound
		}
		if milestone.Completed {
			return nil
		}

		now := time.Now()
		milestone.Completed = true
		milestone.CompletedAt = &now
		milestone.UpdatedAt = now
		if err := tx.Save(&milestone).Error; err != nil {
			return err
		}

		awarded = gamification.MilestoneCompletionPoints
		return awardPoints(tx, userID, awarded)
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40462, "milestone not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50164, "failed to complete milestone")
		return
	}

	utils.Success(ctx, gin.H{
		"milestone":      milestone,
		"points_awarded": awarded,
	})
}

// Delete removes an owned milestone.
func (m *MilestoneController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	milestoneID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40162, "invalid milestone id")
		return
	}

	res := m.db.Where("id = ? AND user_id = ?", milestoneID, userID).Delete(&models.Milestone{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50165, "failed to delete milestone")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40462, "milestone not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "milestone deleted"})
}
