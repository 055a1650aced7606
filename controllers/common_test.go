package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/middleware"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret-do-not-use")
	// Point Redis at a dead port so cached reads always fall through to the
	// database under test.
	os.Setenv("REDIS_PORT", "1")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, rec
}

func newAuthedJSONContext(userID uint, body string) (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	ctx.Set(middleware.ContextUserIDKey, userID)
	return ctx, rec
}

// newMockDB opens gorm against a sqlmock connection. Default transactions are
// disabled so single writes map to single statements; explicit db.Transaction
// blocks still begin and commit.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	return db, mock
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.JSONResponse {
	t.Helper()
	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetUserIDTypeHandling(t *testing.T) {
	cases := []struct {
		value interface{}
		want  uint
		ok    bool
	}{
		{uint(7), 7, true},
		{int(7), 7, true},
		{int64(7), 7, true},
		{float64(7), 7, true},
		{"7", 0, false},
	}
	for _, tc := range cases {
		ctx, _ := newTestContext()
		ctx.Set(middleware.ContextUserIDKey, tc.value)
		got, ok := getUserID(ctx)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestGetUserIDMissing(t *testing.T) {
	ctx, _ := newTestContext()
	_, ok := getUserID(ctx)
	assert.False(t, ok)
}

func TestParseIDParam(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseIDParam(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	ctx.Params = gin.Params{{Key: "id", Value: "0"}}
	_, ok = parseIDParam(ctx, "id")
	assert.False(t, ok)

	ctx.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = parseIDParam(ctx, "id")
	assert.False(t, ok)
}

func TestListWindowDefaultsAndBounds(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?limit=500&offset=10", nil)
	limit, offset := listWindow(ctx, 30, 100)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 10, offset)

	ctx, _ = newTestContext()
	limit, offset = listWindow(ctx, 30, 100)
	assert.Equal(t, 30, limit)
	assert.Equal(t, 0, offset)

	ctx, _ = newTestContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?limit=-5&offset=-3", nil)
	limit, offset = listWindow(ctx, 30, 100)
	assert.Equal(t, 30, limit)
	assert.Equal(t, 0, offset)
}

func TestDayStart(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	in := time.Date(2026, 3, 14, 23, 45, 12, 0, loc)
	out := dayStart(in)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), out)
}

func requireLoginResponse(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please login", resp.Message)
}

// Every handler checks the authenticated user before touching storage, so an
// unauthenticated call never needs a database.
func TestHandlersRejectUnauthenticated(t *testing.T) {
	handlers := map[string]gin.HandlerFunc{
		"checkin.Create":       NewCheckInController(nil).Create,
		"checkin.Today":        NewCheckInController(nil).Today,
		"journal.List":         NewJournalController(nil).List,
		"meditation.Stats":     NewMeditationController(nil).Stats,
		"progress.Dashboard":   NewProgressController(nil).Dashboard,
		"habit.List":           NewHabitController(nil).List,
		"community.CreatePost": NewCommunityController(nil).CreatePost,
		"workout.Stats":        NewWorkoutController(nil).Stats,
		"sleep.List":           NewSleepController(nil).List,
		"milestone.Complete":   NewMilestoneController(nil).Complete,
		"research.Query":       NewResearchController(nil).Query,
		"fit.Create":           NewFitController(nil).Create,
	}

	for name, handler := range handlers {
		ctx, rec := newTestContext()
		handler(ctx)
		requireLoginResponse(t, rec)
		if t.Failed() {
			t.Fatalf("handler %s did not reject unauthenticated request", name)
		}
	}
}
