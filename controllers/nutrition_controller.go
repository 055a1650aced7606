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

// NutritionController logs daily macro and hydration summaries.
type NutritionController struct {
	db *gorm.DB
}

// NewNutritionController creates a new controller instance.
func NewNutritionController(db *gorm.DB) *NutritionController {
	return &NutritionController{db: db}
}

// Create logs a day. Hitting 130g protein unlocks Protein Champion.
func (n *NutritionController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Date         time.Time `json:"date"`
		ProteinGrams *int      `json:"protein_grams"`
		CarbsGrams   *int      `json:"carbs_grams"`
		FatGrams     *int      `json:"fat_grams"`
		Calories     *int      `json:"calories"`
		SodiumMg     *int      `json:"sodium_mg"`
		PotassiumMg  *int      `json:"potassium_mg"`
		MagnesiumMg  *int      `json:"magnesium_mg"`
		IsRefeedDay  bool      `json:"is_refeed_day"`
		WaterOz      *int      `json:"water_oz"`
		Notes        string    `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40141, "invalid request payload")
		return
	}

	date := req.Date
	if date.IsZero() {
		date = dayStart(time.Now())
	}

	entry := models.NutritionLog{
		UserID:       userID,
		Date:         date,
		ProteinGrams: req.ProteinGrams,
		CarbsGrams:   req.CarbsGrams,
		FatGrams:     req.FatGrams,
		Calories:     req.Calories,
		SodiumMg:     req.SodiumMg,
		PotassiumMg:  req.PotassiumMg,
		MagnesiumMg:  req.MagnesiumMg,
		IsRefeedDay:  req.IsRefeedDay,
		WaterOz:      req.WaterOz,
		Notes:        utils.Sanitize(req.Notes),
		CreatedAt:    time.Now(),
	}

	err := n.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.NutritionLogPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50141, "failed to record nutrition")
		return
	}

	var protein int
	if req.ProteinGrams != nil {
		protein = *req.ProteinGrams
	}
	newAchievements, err := grantAchievements(n.db, userID, gamification.NutritionAchievements(protein))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("nutrition achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"log":              entry,
		"points_awarded":   gamification.NutritionLogPoints,
		"new_achievements": newAchievements,
	})
}

// List returns nutrition logs, newest date first.
func (n *NutritionController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var logs []models.NutritionLog
	if err := n.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50142, "failed to load nutrition logs")
		return
	}

	utils.Success(ctx, logs)
}

// Today returns the latest log for the current calendar day, if any.
func (n *NutritionController) Today(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	todayStart := dayStart(time.Now())

	var entry models.NutritionLog
	err := n.db.Where("user_id = ? AND date >= ?", userID, todayStart).
		Order("date DESC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Success(ctx, nil)
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50143, "failed to load nutrition log")
		return
	}

	utils.Success(ctx, entry)
}
