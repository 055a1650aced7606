package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// SleepController logs nights of sleep and their hygiene factors.
type SleepController struct {
	db *gorm.DB
}

// NewSleepController creates a new controller instance.
func NewSleepController(db *gorm.DB) *SleepController {
	return &SleepController{db: db}
}

var validSleepQualities = map[string]bool{
	"excellent": true, "good": true, "fair": true, "poor": true,
}

// Create logs a night. Seven or more hours unlocks Well Rested.
func (s *SleepController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		BedTime        time.Time `json:"bed_time" binding:"required"`
		WakeTime       time.Time `json:"wake_time" binding:"required"`
		TotalHours     string    `json:"total_hours" binding:"required"`
		Quality        string    `json:"quality"`
		CaffeineLate   bool      `json:"caffeine_late"`
		ScreensBefore  bool      `json:"screens_before"`
		RoomTemp       *int      `json:"room_temp"`
		MagnesiumTaken bool      `json:"magnesium_taken"`
		Notes          string    `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40121, "invalid request payload")
		return
	}
	if req.Quality != "" && !validSleepQualities[req.Quality] {
		utils.Error(ctx, http.StatusBadRequest, 40122, "invalid quality")
		return
	}
	totalHours, err := strconv.ParseFloat(req.TotalHours, 64)
	if err != nil || totalHours < 0 || totalHours > 24 {
		utils.Error(ctx, http.StatusBadRequest, 40123, "invalid total hours")
		return
	}

	sleepLog := models.SleepLog{
		UserID:         userID,
		BedTime:        req.BedTime,
		WakeTime:       req.WakeTime,
		TotalHours:     req.TotalHours,
		Quality:        req.Quality,
		CaffeineLate:   req.CaffeineLate,
		ScreensBefore:  req.ScreensBefore,
		RoomTemp:       req.RoomTemp,
		MagnesiumTaken: req.MagnesiumTaken,
		Notes:          utils.Sanitize(req.Notes),
		CreatedAt:      time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sleepLog).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.SleepLogPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50121, "failed to record sleep")
		return
	}

	newAchievements, err := grantAchievements(s.db, userID, gamification.SleepAchievements(totalHours))
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("sleep achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"log":              sleepLog,
		"points_awarded":   gamification.SleepLogPoints,
		"new_achievements": newAchievements,
	})
}

// List returns sleep logs, newest first.
func (s *SleepController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 30, 100)

	var logs []models.SleepLog
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50122, "failed to load sleep logs")
		return
	}

	utils.Success(ctx, logs)
}

// Stats summarizes the last 30 nights. Hours are stored as decimal strings,
// so averages are computed here rather than in SQL.
func (s *SleepController) Stats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var logs []models.SleepLog
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(30).
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50123, "failed to load sleep stats")
		return
	}

	utils.Success(ctx, SleepStats(logs))
}

// SleepStats aggregates nights into totals, average hours, and the count of
// seven-plus-hour nights.
func SleepStats(logs []models.SleepLog) gin.H {
	var totalHours float64
	var parsed int
	var goodNights int
	qualities := map[string]int{}
	for _, l := range logs {
		if h, err := strconv.ParseFloat(l.TotalHours, 64); err == nil {
			totalHours += h
			parsed++
			if h >= 7 {
				goodNights++
			}
		}
		if l.Quality != "" {
			qualities[l.Quality]++
		}
	}

	avg := 0.0
	if parsed > 0 {
		avg = totalHours / float64(parsed)
	}

	return gin.H{
		"total_nights":         len(logs),
		"average_hours":        avg,
		"good_nights":          goodNights,
		"quality_distribution": qualities,
	}
}
