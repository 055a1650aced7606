package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/middleware"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
)

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

func isAdmin(ctx *gin.Context) bool {
	role, _ := ctx.Get(middleware.ContextRoleKey)
	r, ok := role.(string)
	return ok && r == "admin"
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// awardPoints adds points to a user inside tx and recomputes the level tier.
// Points only ever increase.
func awardPoints(tx *gorm.DB, userID uint, points int) error {
	if points <= 0 {
		return nil
	}
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		return err
	}
	user.Points += points
	user.Level = gamification.LevelForPoints(user.Points)
	return tx.Save(&user).Error
}

// grantAchievements inserts unlock rows for the given achievement types,
// ignoring types already held. The composite unique index on
// (user_id, achievement_type) makes the insert race free, so this can run
// outside the caller's transaction.
func grantAchievements(db *gorm.DB, userID uint, types []string) ([]models.Achievement, error) {
	var granted []models.Achievement
	for _, t := range types {
		def, ok := gamification.Lookup(t)
		if !ok {
			continue
		}
		row := models.Achievement{
			UserID:          userID,
			AchievementType: def.Type,
			AchievementName: def.Name,
			Description:     def.Description,
			IconName:        def.Icon,
			EarnedAt:        time.Now(),
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return granted, res.Error
		}
		if res.RowsAffected > 0 {
			granted = append(granted, row)
		}
	}
	return granted, nil
}

// listWindow reads optional limit/offset query params with sane bounds.
func listWindow(ctx *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if raw := ctx.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

// dayStart truncates t to local midnight.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
