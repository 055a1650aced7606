package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// ChatController drives the AI coach: conversations, message history, and
// model-backed replies with graceful degradation when the model is down.
type ChatController struct {
	db *gorm.DB
}

// NewChatController creates a new controller instance.
func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{db: db}
}

const coachFallbackReply = "I'm here to support you. It sounds like you're going through something challenging. Would you like to try a quick breathing exercise, or would you prefer to talk more about what's on your mind?"

const coachSystemPromptTemplate = `You are a compassionate, supportive emotional eating coach named MindfulBite. Your role is to help users understand and manage emotional eating patterns through evidence-based techniques including:
- Mindful eating practices
- Intuitive eating principles
- CBT (Cognitive Behavioral Therapy) techniques
- DBT (Dialectical Behavior Therapy) skills like urge surfing and opposite action
- ACT (Acceptance and Commitment Therapy) approaches
- Self-compassion and loving-kindness

Guidelines:
- Be warm, non-judgmental, and supportive
- Never shame or criticize eating behaviors
- Focus on awareness, not restriction
- Offer practical, actionable suggestions
- Validate emotions before offering solutions
- Use "I notice" and "I wonder" language
- Encourage self-compassion
- If someone is in crisis, gently suggest professional help

%s

Keep responses concise but helpful (2-3 paragraphs max). End with a supportive question or gentle suggestion when appropriate.`

// CreateConversation starts a new coach conversation.
func (cc *ChatController) CreateConversation(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	_ = ctx.ShouldBindJSON(&req)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "New Conversation"
	}

	conversation := models.ChatConversation{
		UserID:    userID,
		Title:     utils.Sanitize(title),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := cc.db.Create(&conversation).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to create conversation")
		return
	}

	utils.Success(ctx, conversation)
}

// ListConversations returns the user's conversations, most recent first.
func (cc *ChatController) ListConversations(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var conversations []models.ChatConversation
	if err := cc.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load conversations")
		return
	}

	utils.Success(ctx, conversations)
}

// GetMessages returns the ordered messages of one owned conversation.
func (cc *ChatController) GetMessages(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	conversationID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid conversation id")
		return
	}

	conversation, ok := cc.ownedConversation(ctx, userID, conversationID)
	if !ok {
		return
	}

	var messages []models.ChatMessage
	if err := cc.db.Where("conversation_id = ?", conversation.ID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load messages")
		return
	}

	utils.Success(ctx, messages)
}

// SendMessage persists the user's message, asks the model for a reply with
// recent mood context, and stores the assistant turn. Model failure degrades
// to a canned supportive reply rather than an error.
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	conversationID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid conversation id")
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid request payload")
		return
	}

	conversation, ok := cc.ownedConversation(ctx, userID, conversationID)
	if !ok {
		return
	}

	userMessage := models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           "user",
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := cc.db.Create(&userMessage).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to save message")
		return
	}

	reply := cc.generateCoachReply(ctx, userID, conversation.ID)

	assistantMessage := models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           "assistant",
		Content:        reply,
		CreatedAt:      time.Now(),
	}
	if err := cc.db.Create(&assistantMessage).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to save message")
		return
	}

	_ = cc.db.Model(&conversation).Update("updated_at", time.Now()).Error

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		return awardPoints(tx, userID, gamification.ChatMessagePoints)
	})
	if err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("chat point award failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, assistantMessage)
}

func (cc *ChatController) ownedConversation(ctx *gin.Context, userID, conversationID uint) (models.ChatConversation, bool) {
	var conversation models.ChatConversation
	if err := cc.db.First(&conversation, conversationID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40421, "conversation not found")
		return conversation, false
	}
	if conversation.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40321, "not your conversation")
		return conversation, false
	}
	return conversation, true
}

func (cc *ChatController) generateCoachReply(ctx *gin.Context, userID, conversationID uint) string {
	var history []models.ChatMessage
	if err := cc.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(10).
		Find(&history).Error; err != nil {
		return coachFallbackReply
	}
	// newest-first from the query, oldest-first for the model
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	messages := make([]utils.ChatMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, utils.ChatMessage{Role: m.Role, Content: m.Content})
	}

	system := fmt.Sprintf(coachSystemPromptTemplate, cc.moodContext(userID))

	reply, err := utils.GenerateReply(ctx.Request.Context(), system, messages)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("coach reply generation failed user=%d err=%v", userID, err)
		}
		return coachFallbackReply
	}
	return reply
}

// moodContext summarizes the user's recent check-ins for the system prompt.
func (cc *ChatController) moodContext(userID uint) string {
	var recent []models.CheckIn
	if err := cc.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil || len(recent) == 0 {
		return ""
	}

	moods := make([]string, 0, len(recent))
	var emotions []string
	for _, c := range recent {
		moods = append(moods, c.Mood)
		emotions = append(emotions, c.Emotions...)
	}
	if len(emotions) > 5 {
		emotions = emotions[:5]
	}
	return fmt.Sprintf("Recent mood patterns: %s. Recent emotions: %s.",
		strings.Join(moods, ", "), strings.Join(emotions, ", "))
}
