package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/config"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/controllers"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/middleware"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	checkInController := controllers.NewCheckInController(db)
	chatController := controllers.NewChatController(db)
	journalController := controllers.NewJournalController(db)
	meditationController := controllers.NewMeditationController(db)
	progressController := controllers.NewProgressController(db)
	habitController := controllers.NewHabitController(db)
	communityController := controllers.NewCommunityController(db)
	toolkitController := controllers.NewToolkitController(db)
	challengeController := controllers.NewChallengeController(db)
	workoutController := controllers.NewWorkoutController(db)
	supplementController := controllers.NewSupplementController(db)
	sleepController := controllers.NewSleepController(db)
	biohackingController := controllers.NewBiohackingController(db)
	nutritionController := controllers.NewNutritionController(db)
	bodyMetricController := controllers.NewBodyMetricController(db)
	milestoneController := controllers.NewMilestoneController(db)
	researchController := controllers.NewResearchController(db)
	fitController := controllers.NewFitController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/nonce", authController.Nonce)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/google/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/google/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	checkIns := protected.Group("/check-ins")
	checkIns.POST("", checkInController.Create)
	checkIns.GET("", checkInController.List)
	checkIns.GET("/today", checkInController.Today)

	chat := protected.Group("/chat")
	chat.POST("/conversations", chatController.CreateConversation)
	chat.GET("/conversations", chatController.ListConversations)
	chat.GET("/conversations/:id/messages", chatController.GetMessages)
	chat.POST("/conversations/:id/messages", chatController.SendMessage)

	journal := protected.Group("/journal")
	journal.POST("", journalController.Create)
	journal.GET("", journalController.List)
	journal.GET("/:id", journalController.Get)
	journal.PUT("/:id", journalController.Update)
	journal.DELETE("/:id", journalController.Delete)

	meditations := protected.Group("/meditations")
	meditations.POST("", meditationController.Complete)
	meditations.GET("", meditationController.List)
	meditations.GET("/stats", meditationController.Stats)

	progress := protected.Group("/progress")
	progress.GET("/dashboard", progressController.Dashboard)
	progress.GET("/achievements", progressController.Achievements)

	habits := protected.Group("/habits")
	habits.POST("", habitController.Create)
	habits.GET("", habitController.List)
	habits.POST("/:id/complete", habitController.Complete)
	habits.PUT("/:id", habitController.Update)
	habits.DELETE("/:id", habitController.Delete)

	community := protected.Group("/community")
	community.GET("/posts", communityController.ListPosts)
	community.POST("/posts", communityController.CreatePost)
	community.POST("/posts/:id/like", communityController.ToggleLike)
	community.GET("/likes", communityController.MyLikes)
	community.DELETE("/posts/:id", communityController.DeletePost)

	toolkit := protected.Group("/toolkit")
	toolkit.POST("/usage", toolkitController.LogUsage)
	toolkit.GET("/history", toolkitController.History)

	challenges := protected.Group("/challenges")
	challenges.GET("/active", challengeController.Active)
	challenges.POST("/:id/join", challengeController.Join)
	challenges.GET("/mine", challengeController.MyProgress)
	challenges.POST("", middleware.AdminRequired(), challengeController.Create)

	workouts := protected.Group("/workouts")
	workouts.POST("", workoutController.Create)
	workouts.GET("", workoutController.List)
	workouts.GET("/stats", workoutController.Stats)
	workouts.GET("/weekly-count", workoutController.WeeklyCount)

	supplements := protected.Group("/supplements")
	supplements.POST("", supplementController.Create)
	supplements.GET("", supplementController.List)
	supplements.PUT("/:id", supplementController.Update)
	supplements.POST("/:id/intake", supplementController.LogIntake)
	supplements.GET("/intake/today", supplementController.TodayLogs)

	sleep := protected.Group("/sleep")
	sleep.POST("", sleepController.Create)
	sleep.GET("", sleepController.List)
	sleep.GET("/stats", sleepController.Stats)

	biohacking := protected.Group("/biohacking")
	biohacking.POST("", biohackingController.Create)
	biohacking.GET("", biohackingController.List)
	biohacking.GET("/today", biohackingController.Today)

	nutrition := protected.Group("/nutrition")
	nutrition.POST("", nutritionController.Create)
	nutrition.GET("", nutritionController.List)
	nutrition.GET("/today", nutritionController.Today)

	bodyMetrics := protected.Group("/body-metrics")
	bodyMetrics.POST("", bodyMetricController.Create)
	bodyMetrics.GET("", bodyMetricController.List)
	bodyMetrics.GET("/latest", bodyMetricController.Latest)

	milestones := protected.Group("/milestones")
	milestones.POST("", milestoneController.Create)
	milestones.GET("", milestoneController.List)
	milestones.PUT("/:id/progress", milestoneController.UpdateProgress)
	milestones.POST("/:id/complete", milestoneController.Complete)
	milestones.DELETE("/:id", milestoneController.Delete)

	research := protected.Group("/research")
	research.POST("/query", researchController.Query)
	research.GET("/history", researchController.History)
	research.DELETE("/:id", researchController.Delete)

	fit := protected.Group("/fit-sessions")
	fit.POST("", fitController.Create)
	fit.GET("", fitController.List)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
	})

	return r
}
