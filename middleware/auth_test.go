package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret-do-not-use")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/probe", AuthRequired(), func(ctx *gin.Context) {
		userID, _ := ctx.Get(ContextUserIDKey)
		role, _ := ctx.Get(ContextRoleKey)
		utils.Success(ctx, gin.H{"user_id": userID, "role": role})
	})
	router.GET("/admin", AuthRequired(), AdminRequired(), func(ctx *gin.Context) {
		utils.Success(ctx, nil)
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.JSONResponse {
	t.Helper()
	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	rec := doRequest(authTestRouter(), "/probe", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 40101, resp.Code)
	assert.Equal(t, "Please login", resp.Message)
}

func TestAuthRequiredBadScheme(t *testing.T) {
	rec := doRequest(authTestRouter(), "/probe", "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Please login", decodeEnvelope(t, rec).Message)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	rec := doRequest(authTestRouter(), "/probe", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 40105, resp.Code)
	assert.Equal(t, "Please login", resp.Message)
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(9, "identity:expired", "user", -time.Minute)
	assert.NoError(t, err)

	rec := doRequest(authTestRouter(), "/probe", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, err := utils.GenerateToken(9, "identity:ok", "user", time.Hour)
	assert.NoError(t, err)

	rec := doRequest(authTestRouter(), "/probe", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 0, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(9), data["user_id"])
	assert.Equal(t, "user", data["role"])
}

func TestAdminRequiredRejectsUser(t *testing.T) {
	token, err := utils.GenerateToken(9, "identity:ok", "user", time.Hour)
	assert.NoError(t, err)

	rec := doRequest(authTestRouter(), "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 40301, decodeEnvelope(t, rec).Code)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	token, err := utils.GenerateToken(1, "identity:owner", "admin", time.Hour)
	assert.NoError(t, err)

	rec := doRequest(authTestRouter(), "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
