package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// ProgressController aggregates gamification state and recent patterns into
// the dashboard payload.
type ProgressController struct {
	db *gorm.DB
}

// NewProgressController creates a new controller instance.
func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{db: db}
}

// labelCount pairs a label with its frequency, ordered for the dashboard.
type labelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Dashboard returns points, streaks, achievements, and 30-day mood patterns.
func (p *ProgressController) Dashboard(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	var checkIns []models.CheckIn
	if err := p.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(30).
		Find(&checkIns).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to load dashboard")
		return
	}

	var achievements []models.Achievement
	if err := p.db.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to load dashboard")
		return
	}

	var journalCount int64
	_ = p.db.Model(&models.JournalEntry{}).Where("user_id = ?", userID).Count(&journalCount).Error

	var meditationCount int64
	var meditationMinutes int64
	_ = p.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&meditationCount).Error
	_ = p.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&meditationMinutes).Error

	utils.Success(ctx, gin.H{
		"user": gin.H{
			"points":         user.Points,
			"level":          user.Level,
			"current_streak": user.CurrentStreak,
			"longest_streak": user.LongestStreak,
		},
		"check_in_count": len(checkIns),
		"journal_count":  journalCount,
		"meditation_stats": gin.H{
			"total_sessions": meditationCount,
			"total_minutes":  meditationMinutes,
		},
		"achievements":      achievements,
		"mood_distribution": MoodDistribution(checkIns),
		"top_emotions":      TopEmotions(checkIns, 5),
		"top_triggers":      TopTriggers(checkIns, 5),
	})
}

// Achievements returns all unlocked badges, newest first.
func (p *ProgressController) Achievements(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var achievements []models.Achievement
	if err := p.db.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load achievements")
		return
	}

	utils.Success(ctx, achievements)
}

// MoodDistribution counts check-ins per mood label.
func MoodDistribution(checkIns []models.CheckIn) map[string]int {
	counts := map[string]int{}
	for _, c := range checkIns {
		counts[c.Mood]++
	}
	return counts
}

// TopEmotions returns the n most frequent emotions across check-ins.
func TopEmotions(checkIns []models.CheckIn, n int) []labelCount {
	counts := map[string]int{}
	for _, c := range checkIns {
		for _, e := range c.Emotions {
			counts[e]++
		}
	}
	return topN(counts, n)
}

// TopTriggers returns the n most frequent triggers across check-ins.
func TopTriggers(checkIns []models.CheckIn, n int) []labelCount {
	counts := map[string]int{}
	for _, c := range checkIns {
		for _, t := range c.Triggers {
			counts[t]++
		}
	}
	return topN(counts, n)
}

func topN(counts map[string]int, n int) []labelCount {
	items := make([]labelCount, 0, len(counts))
	for label, count := range counts {
		items = append(items, labelCount{Label: label, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
