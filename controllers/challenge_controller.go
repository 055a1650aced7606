package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// ChallengeController exposes time-boxed community challenges.
type ChallengeController struct {
	db *gorm.DB
}

// NewChallengeController creates a new controller instance.
func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{db: db}
}

// Active lists challenges currently open for joining, flagging the ones the
// caller already joined.
func (c *ChallengeController) Active(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	now := time.Now()
	var challenges []models.Challenge
	if err := c.db.Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("end_date ASC").
		Find(&challenges).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50091, "failed to load challenges")
		return
	}

	joined := map[uint]bool{}
	var enrollments []models.UserChallenge
	if err := c.db.Where("user_id = ?", userID).Find(&enrollments).Error; err == nil {
		for _, e := range enrollments {
			joined[e.ChallengeID] = true
		}
	}

	items := make([]gin.H, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, gin.H{
			"challenge": ch,
			"joined":    joined[ch.ID],
		})
	}

	utils.Success(ctx, items)
}

// Join enrolls the user in a challenge, once.
func (c *ChallengeController) Join(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	challengeID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40091, "invalid challenge id")
		return
	}

	var challenge models.Challenge
	if err := c.db.First(&challenge, challengeID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40491, "challenge not found")
		return
	}

	now := time.Now()
	if !challenge.IsActive || now.Before(challenge.StartDate) || now.After(challenge.EndDate) {
		utils.Error(ctx, http.StatusBadRequest, 40092, "challenge is not open")
		return
	}

	var existing models.UserChallenge
	if err := c.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusBadRequest, 40093, "already joined")
		return
	}

	enrollment := models.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
		JoinedAt:    now,
	}
	if err := c.db.Create(&enrollment).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50092, "failed to join challenge")
		return
	}

	utils.Success(ctx, enrollment)
}

// MyProgress returns the user's enrollments with their challenge details.
func (c *ChallengeController) MyProgress(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var enrollments []models.UserChallenge
	if err := c.db.Preload("Challenge").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&enrollments).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50093, "failed to load challenge progress")
		return
	}

	utils.Success(ctx, enrollments)
}

// Create registers a new challenge. Admin only, enforced in the router.
func (c *ChallengeController) Create(ctx *gin.Context) {
	if _, ok := getUserID(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Title         string    `json:"title" binding:"required"`
		Description   string    `json:"description" binding:"required"`
		ChallengeType string    `json:"challenge_type" binding:"required"`
		TargetCount   int       `json:"target_count" binding:"required,min=1"`
		PointsReward  int       `json:"points_reward" binding:"required,min=1"`
		StartDate     time.Time `json:"start_date" binding:"required"`
		EndDate       time.Time `json:"end_date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40094, "invalid request payload")
		return
	}
	if !req.EndDate.After(req.StartDate) {
		utils.Error(ctx, http.StatusBadRequest, 40095, "end date must be after start date")
		return
	}

	challenge := models.Challenge{
		Title:         utils.Sanitize(req.Title),
		Description:   utils.Sanitize(req.Description),
		ChallengeType: req.ChallengeType,
		TargetCount:   req.TargetCount,
		PointsReward:  req.PointsReward,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsActive:      true,
	}
	if err := c.db.Create(&challenge).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50094, "failed to create challenge")
		return
	}

	utils.Success(ctx, challenge)
}
