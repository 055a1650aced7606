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

// WorkoutController logs exercise sessions of all types.
type WorkoutController struct {
	db *gorm.DB
}

// NewWorkoutController creates a new controller instance.
func NewWorkoutController(db *gorm.DB) *WorkoutController {
	return &WorkoutController{db: db}
}

var validWorkoutTypes = map[string]bool{
	"strength": true, "walking": true, "incline": true,
	"rucking": true, "nordic": true, "other": true,
}

// Create logs a workout. Strength earns a higher base; every full 10 minutes
// adds a duration bonus.
func (w *WorkoutController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		WorkoutType     string `json:"workout_type" binding:"required"`
		Name            string `json:"name"`
		DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
		DistanceMiles   string `json:"distance_miles"`
		InclinePercent  *int   `json:"incline_percent"`
		RuckWeightLbs   *int   `json:"ruck_weight_lbs"`
		AvgHeartRate    *int   `json:"avg_heart_rate"`
		Exercises       string `json:"exercises"`
		CaloriesBurned  *int   `json:"calories_burned"`
		Notes           string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40191, "invalid request payload")
		return
	}
	if !validWorkoutTypes[req.WorkoutType] {
		utils.Error(ctx, http.StatusBadRequest, 40192, "invalid workout type")
		return
	}

	workout := models.Workout{
		UserID:          userID,
		WorkoutType:     req.WorkoutType,
		Name:            utils.Sanitize(req.Name),
		DurationMinutes: req.DurationMinutes,
		DistanceMiles:   req.DistanceMiles,
		InclinePercent:  req.InclinePercent,
		RuckWeightLbs:   req.RuckWeightLbs,
		AvgHeartRate:    req.AvgHeartRate,
		Exercises:       req.Exercises,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           utils.Sanitize(req.Notes),
		CreatedAt:       time.Now(),
	}

	points := gamification.WorkoutPoints(req.WorkoutType, req.DurationMinutes)

	err := w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, points)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50101, "failed to record workout")
		return
	}

	weeklyCount := w.weeklyCount(userID)
	newAchievements, err := grantAchievements(w.db, userID, gamification.WorkoutAchievements(weeklyCount))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("workout achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"workout":          workout,
		"points_awarded":   points,
		"new_achievements": newAchievements,
	})
}

// List returns the user's workouts, newest first.
func (w *WorkoutController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var workouts []models.Workout
	if err := w.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&workouts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50102, "failed to load workouts")
		return
	}

	utils.Success(ctx, workouts)
}

// WeeklyCount returns workouts logged in the trailing 7 days.
func (w *WorkoutController) WeeklyCount(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	utils.Success(ctx, gin.H{"weekly_count": w.weeklyCount(userID)})
}

// Stats summarizes lifetime training volume.
func (w *WorkoutController) Stats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var total int64
	var totalMinutes int64
	if err := w.db.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50103, "failed to load workout stats")
		return
	}
	if err := w.db.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&totalMinutes).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50103, "failed to load workout stats")
		return
	}

	type typeCount struct {
		WorkoutType string `json:"workout_type"`
		Count       int    `json:"count"`
	}
	var byType []typeCount
	_ = w.db.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Select("workout_type, COUNT(*) AS count").
		Group("workout_type").
		Scan(&byType).Error

	utils.Success(ctx, gin.H{
		"total_workouts": total,
		"total_minutes":  totalMinutes,
		"by_type":        byType,
		"weekly_count":   w.weeklyCount(userID),
	})
}

func (w *WorkoutController) weeklyCount(userID uint) int {
	weekAgo := time.Now().AddDate(0, 0, -7)
	var count int64
	_ = w.db.Model(&models.Workout{}).
		Where("user_id = ? AND created_at >= ?", userID, weekAgo).
		Count(&count).Error
	return int(count)
}
