package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/middleware"
)

func toggleLikeContext(userID uint, postID string) (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	ctx.Set(middleware.ContextUserIDKey, userID)
	ctx.Params = gin.Params{{Key: "id", Value: postID}}
	return ctx, rec
}

func TestToggleLikeAddsLike(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `community_posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_anonymous", "likes_count"}).
			AddRow(5, 2, "made it through a craving", false, 0))
	mock.ExpectQuery("SELECT \\* FROM `post_likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))
	mock.ExpectExec("INSERT INTO `post_likes`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE `community_posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, rec := toggleLikeContext(1, "5")
	NewCommunityController(db).ToggleLike(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, 0, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, data["liked"])
	assert.Equal(t, float64(1), data["likes_count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeRemovesLike(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `community_posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_anonymous", "likes_count"}).
			AddRow(5, 2, "made it through a craving", false, 1))
	mock.ExpectQuery("SELECT \\* FROM `post_likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "created_at"}).
			AddRow(9, 5, 1, time.Now()))
	mock.ExpectExec("DELETE FROM `post_likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `community_posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, rec := toggleLikeContext(1, "5")
	NewCommunityController(db).ToggleLike(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, false, data["liked"])
	assert.Equal(t, float64(0), data["likes_count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeMissingPost(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `community_posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	ctx, rec := toggleLikeContext(1, "404")
	NewCommunityController(db).ToggleLike(ctx)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 40471, decodeResponse(t, rec).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPostsMasksAnonymousAuthors(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `community_posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_anonymous", "likes_count"}).
			AddRow(11, 2, "made it through a craving", false, 3).
			AddRow(12, 3, "rough evening", true, 1))
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Maya"))
	mock.ExpectQuery("SELECT \\* FROM `post_likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).AddRow(1, 11, 1))

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	// A unique offset keeps this page out of any warm feed cache.
	ctx.Request = httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/?offset=%d", time.Now().UnixNano()%1000000), nil)
	ctx.Set(middleware.ContextUserIDKey, uint(1))

	NewCommunityController(db).ListPosts(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	items, ok := decodeResponse(t, rec).Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)

	first, ok := items[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Maya", first["author_name"])
	assert.Equal(t, float64(2), first["author_id"])
	assert.Equal(t, true, first["liked_by_me"])
	assert.Equal(t, float64(3), first["likes_count"])

	second, ok := items[1].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Anonymous", second["author_name"])
	assert.NotContains(t, second, "author_id")
	assert.Equal(t, false, second["liked_by_me"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
