package main

import (
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/config"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/routes"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.CheckIn{},
		&models.ChatConversation{},
		&models.ChatMessage{},
		&models.JournalEntry{},
		&models.MeditationSession{},
		&models.Achievement{},
		&models.Habit{},
		&models.HabitLog{},
		&models.CommunityPost{},
		&models.PostLike{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.ToolkitUsage{},
		&models.Workout{},
		&models.Supplement{},
		&models.SupplementLog{},
		&models.SleepLog{},
		&models.BiohackingLog{},
		&models.NutritionLog{},
		&models.BodyMetric{},
		&models.Milestone{},
		&models.AiResearchEntry{},
		&models.FitSession{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
