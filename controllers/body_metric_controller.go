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

// BodyMetricController logs body-composition measurements.
type BodyMetricController struct {
	db *gorm.DB
}

// NewBodyMetricController creates a new controller instance.
func NewBodyMetricController(db *gorm.DB) *BodyMetricController {
	return &BodyMetricController{db: db}
}

var validMeasurementTypes = map[string]bool{
	"scale": true, "dexa": true, "bodpod": true, "tape": true,
}

// Create logs a measurement and awards points.
func (b *BodyMetricController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Date            time.Time `json:"date"`
		WeightLbs       string    `json:"weight_lbs"`
		BodyFatPercent  string    `json:"body_fat_percent"`
		LeanMassLbs     string    `json:"lean_mass_lbs"`
		VisceralFat     *int      `json:"visceral_fat"`
		WaistInches     string    `json:"waist_inches"`
		HipsInches      string    `json:"hips_inches"`
		ChestInches     string    `json:"chest_inches"`
		MeasurementType string    `json:"measurement_type"`
		Notes           string    `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40151, "invalid request payload")
		return
	}
	if req.MeasurementType != "" && !validMeasurementTypes[req.MeasurementType] {
		utils.Error(ctx, http.StatusBadRequest, 40152, "invalid measurement type")
		return
	}

	date := req.Date
	if date.IsZero() {
		date = dayStart(time.Now())
	}

	metric := models.BodyMetric{
		UserID:          userID,
		Date:            date,
		WeightLbs:       req.WeightLbs,
		BodyFatPercent:  req.BodyFatPercent,
		LeanMassLbs:     req.LeanMassLbs,
		VisceralFat:     req.VisceralFat,
		WaistInches:     req.WaistInches,
		HipsInches:      req.HipsInches,
		ChestInches:     req.ChestInches,
		MeasurementType: req.MeasurementType,
		Notes:           utils.Sanitize(req.Notes),
		CreatedAt:       time.Now(),
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&metric).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.BodyMetricPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50151, "failed to record measurement")
		return
	}

	utils.Success(ctx, gin.H{
		"metric":         metric,
		"points_awarded": gamification.BodyMetricPoints,
	})
}

// List returns measurements, newest date first.
func (b *BodyMetricController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var metrics []models.BodyMetric
	if err := b.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).Offset(offset).
		Find(&metrics).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50152, "failed to load measurements")
		return
	}

	utils.Success(ctx, metrics)
}

// Latest returns the most recent measurement, if any.
func (b *BodyMetricController) Latest(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var metric models.BodyMetric
	err := b.db.Where("user_id = ?", userID).
		Order("date DESC").
		First(&metric).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Success(ctx, nil)
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50153, "failed to load measurement")
		return
	}

	utils.Success(ctx, metric)
}
