package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// ResearchController answers wellness research questions through the model
// and archives every exchange.
type ResearchController struct {
	db *gorm.DB
}

// NewResearchController creates a new controller instance.
func NewResearchController(db *gorm.DB) *ResearchController {
	return &ResearchController{db: db}
}

const researchSystemPrompt = `You are a knowledgeable health and wellness research assistant. Provide evidence-based information about weight loss, nutrition, exercise, supplements, and healthy habits. Always cite research when possible and note when something is anecdotal vs scientifically proven. Be helpful but remind users to consult healthcare providers for medical decisions.`

// Query asks the model a research question. Unlike the coach there is no
// canned fallback: a model failure is a failure, and the entry is only
// persisted when an answer exists.
func (r *ResearchController) Query(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Query    string `json:"query" binding:"required"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40171, "invalid request payload")
		return
	}

	answer, err := utils.GenerateReply(ctx.Request.Context(), researchSystemPrompt,
		[]utils.ChatMessage{{Role: "user", Content: req.Query}})
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Errorf("research query failed user=%d err=%v", userID, err)
		}
		utils.Error(ctx, http.StatusInternalServerError, 50171, "failed to generate research answer")
		return
	}

	entry := models.AiResearchEntry{
		UserID:    userID,
		Query:     req.Query,
		Response:  answer,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50172, "failed to save research entry")
		return
	}

	utils.Success(ctx, entry)
}

// History returns archived research entries, newest first.
func (r *ResearchController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 20, 100)

	query := r.db.Where("user_id = ?", userID)
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var entries []models.AiResearchEntry
	if err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50173, "failed to load research history")
		return
	}

	utils.Success(ctx, entries)
}

// Delete removes an owned research entry.
func (r *ResearchController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40172, "invalid entry id")
		return
	}

	res := r.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.AiResearchEntry{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50174, "failed to delete research entry")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40472, "research entry not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "research entry deleted"})
}
