package controllers

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
)

func TestGrantAchievementsFirstUnlock(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO `achievements`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	granted, err := grantAchievements(db, 1, []string{gamification.AchFirstJournal})
	assert.NoError(t, err)
	assert.Len(t, granted, 1)
	assert.Equal(t, "Reflective Writer", granted[0].AchievementName)
	assert.Equal(t, gamification.AchFirstJournal, granted[0].AchievementType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantAchievementsAlreadyHeld(t *testing.T) {
	db, mock := newMockDB(t)

	// Conflict-ignoring insert hits the unique (user_id, achievement_type)
	// index and affects zero rows, so no unlock is reported.
	mock.ExpectExec("INSERT INTO `achievements`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	granted, err := grantAchievements(db, 1, []string{gamification.AchFirstJournal})
	assert.NoError(t, err)
	assert.Empty(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantAchievementsUnknownTypeSkipped(t *testing.T) {
	db, mock := newMockDB(t)

	granted, err := grantAchievements(db, 1, []string{"not_a_badge"})
	assert.NoError(t, err)
	assert.Empty(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
