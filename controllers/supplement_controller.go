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

// SupplementController manages the supplement protocol and intake logs.
type SupplementController struct {
	db *gorm.DB
}

// NewSupplementController creates a new controller instance.
func NewSupplementController(db *gorm.DB) *SupplementController {
	return &SupplementController{db: db}
}

var (
	validTiers       = map[string]bool{"tier1": true, "tier2": true, "tier3": true}
	validSupplFreqs  = map[string]bool{"daily": true, "twice_daily": true, "weekly": true, "as_needed": true}
	validTimesOfDay  = map[string]bool{"morning": true, "afternoon": true, "evening": true, "bedtime": true, "with_meals": true}
)

// Create adds a supplement to the protocol.
func (s *SupplementController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		Dosage    string `json:"dosage"`
		Tier      string `json:"tier"`
		Frequency string `json:"frequency"`
		TimeOfDay string `json:"time_of_day"`
		Notes     string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40111, "invalid request payload")
		return
	}
	if req.Tier != "" && !validTiers[req.Tier] {
		utils.Error(ctx, http.StatusBadRequest, 40112, "invalid tier")
		return
	}
	if req.Frequency != "" && !validSupplFreqs[req.Frequency] {
		utils.Error(ctx, http.StatusBadRequest, 40113, "invalid frequency")
		return
	}
	if req.TimeOfDay != "" && !validTimesOfDay[req.TimeOfDay] {
		utils.Error(ctx, http.StatusBadRequest, 40114, "invalid time of day")
		return
	}

	supplement := models.Supplement{
		UserID:    userID,
		Name:      utils.Sanitize(req.Name),
		Dosage:    req.Dosage,
		Tier:      req.Tier,
		Frequency: req.Frequency,
		TimeOfDay: req.TimeOfDay,
		IsActive:  true,
		Notes:     utils.Sanitize(req.Notes),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(&supplement).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50111, "failed to create supplement")
		return
	}

	utils.Success(ctx, supplement)
}

// List returns the user's supplements, active first.
func (s *SupplementController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var supplements []models.Supplement
	if err := s.db.Where("user_id = ?", userID).
		Order("is_active DESC, created_at DESC").
		Find(&supplements).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50112, "failed to load supplements")
		return
	}

	utils.Success(ctx, supplements)
}

// LogIntake records one intake of an owned supplement and awards points.
func (s *SupplementController) LogIntake(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	supplementID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40115, "invalid supplement id")
		return
	}

	var supplement models.Supplement
	if err := s.db.First(&supplement, supplementID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40411, "supplement not found")
		return
	}
	if supplement.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40311, "not your supplement")
		return
	}

	intake := models.SupplementLog{
		SupplementID: supplementID,
		UserID:       userID,
		TakenAt:      time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&intake).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.SupplementIntakePoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50113, "failed to log intake")
		return
	}

	utils.Success(ctx, gin.H{
		"log":            intake,
		"points_awarded": gamification.SupplementIntakePoints,
	})
}

// TodayLogs returns today's intakes for the protocol checklist.
func (s *SupplementController) TodayLogs(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	todayStart := dayStart(time.Now())

	var logs []models.SupplementLog
	if err := s.db.Where("user_id = ? AND taken_at >= ?", userID, todayStart).
		Order("taken_at DESC").
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50114, "failed to load intake logs")
		return
	}

	utils.Success(ctx, logs)
}

// Update edits an owned supplement, including deactivation.
func (s *SupplementController) Update(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	supplementID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40115, "invalid supplement id")
		return
	}

	var req struct {
		Name      string `json:"name"`
		Dosage    string `json:"dosage"`
		Tier      string `json:"tier"`
		Frequency string `json:"frequency"`
		TimeOfDay string `json:"time_of_day"`
		IsActive  *bool  `json:"is_active"`
		Notes     string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40111, "invalid request payload")
		return
	}

	var supplement models.Supplement
	if err := s.db.First(&supplement, supplementID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40411, "supplement not found")
		return
	}
	if supplement.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40311, "not your supplement")
		return
	}

	if req.Name != "" {
		supplement.Name = utils.Sanitize(req.Name)
	}
	if req.Dosage != "" {
		supplement.Dosage = req.Dosage
	}
	if req.Tier != "" {
		if !validTiers[req.Tier] {
			utils.Error(ctx, http.StatusBadRequest, 40112, "invalid tier")
			return
		}
		supplement.Tier = req.Tier
	}
	if req.Frequency != "" {
		if !validSupplFreqs[req.Frequency] {
			utils.Error(ctx, http.StatusBadRequest, 40113, "invalid frequency")
			return
		}
		supplement.Frequency = req.Frequency
	}
	if req.TimeOfDay != "" {
		if !validTimesOfDay[req.TimeOfDay] {
			utils.Error(ctx, http.StatusBadRequest, 40114, "invalid time of day")
			return
		}
		supplement.TimeOfDay = req.TimeOfDay
	}
	if req.IsActive != nil {
		supplement.IsActive = *req.IsActive
	}
	if req.Notes != "" {
		supplement.Notes = utils.Sanitize(req.Notes)
	}
	supplement.UpdatedAt = time.Now()

	if err := s.db.Save(&supplement).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50115, "failed to update supplement")
		return
	}

	utils.Success(ctx, supplement)
}
