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

// JournalController manages free-form reflective journal entries.
type JournalController struct {
	db *gorm.DB
}

// NewJournalController creates a new controller instance.
func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{db: db}
}

// Create stores a journal entry and awards points. The first entry ever
// unlocks the Reflective Writer achievement.
func (j *JournalController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Title            string   `json:"title"`
		Content          string   `json:"content" binding:"required"`
		Mood             string   `json:"mood"`
		Emotions         []string `json:"emotions"`
		Triggers         []string `json:"triggers"`
		ReflectionPrompt string   `json:"reflection_prompt"`
		Insights         string   `json:"insights"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}
	if req.Mood != "" && !validMoods[req.Mood] {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid mood")
		return
	}

	entry := models.JournalEntry{
		UserID:           userID,
		Title:            utils.Sanitize(req.Title),
		Content:          utils.Sanitize(req.Content),
		Mood:             req.Mood,
		Emotions:         models.JSONList(req.Emotions),
		Triggers:         models.JSONList(req.Triggers),
		ReflectionPrompt: req.ReflectionPrompt,
		Insights:         utils.Sanitize(req.Insights),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	err := j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.JournalEntryPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to create journal entry")
		return
	}

	newAchievements, err := grantAchievements(j.db, userID, []string{gamification.AchFirstJournal})
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("journal achievement grant failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"entry":            entry,
		"points_awarded":   gamification.JournalEntryPoints,
		"new_achievements": newAchievements,
	})
}

// List returns the user's journal entries, newest first.
func (j *JournalController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 20, 100)

	var entries []models.JournalEntry
	if err := j.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load journal entries")
		return
	}

	utils.Success(ctx, entries)
}

// Get returns one owned entry.
func (j *JournalController) Get(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid entry id")
		return
	}

	var entry models.JournalEntry
	if err := j.db.First(&entry, entryID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40431, "journal entry not found")
		return
	}
	if entry.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40331, "not your journal entry")
		return
	}

	utils.Success(ctx, entry)
}

// Update edits an owned entry's mutable fields.
func (j *JournalController) Update(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid entry id")
		return
	}

	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Mood     string   `json:"mood"`
		Emotions []string `json:"emotions"`
		Triggers []string `json:"triggers"`
		Insights string   `json:"insights"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	var entry models.JournalEntry
	if err := j.db.First(&entry, entryID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40431, "journal entry not found")
		return
	}
	if entry.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40331, "not your journal entry")
		return
	}

	if req.Title != "" {
		entry.Title = utils.Sanitize(req.Title)
	}
	if req.Content != "" {
		entry.Content = utils.Sanitize(req.Content)
	}
	if req.Mood != "" {
		if !validMoods[req.Mood] {
			utils.Error(ctx, http.StatusBadRequest, 40032, "invalid mood")
			return
		}
		entry.Mood = req.Mood
	}
	if req.Emotions != nil {
		entry.Emotions = models.JSONList(req.Emotions)
	}
	if req.Triggers != nil {
		entry.Triggers = models.JSONList(req.Triggers)
	}
	if req.Insights != "" {
		entry.Insights = utils.Sanitize(req.Insights)
	}
	entry.UpdatedAt = time.Now()

	if err := j.db.Save(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to update journal entry")
		return
	}

	utils.Success(ctx, entry)
}

// Delete removes an owned entry.
func (j *JournalController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid entry id")
		return
	}

	res := j.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.JournalEntry{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50034, "failed to delete journal entry")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40431, "journal entry not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "journal entry deleted"})
}
