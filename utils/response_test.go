package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func envelopeFor(t *testing.T, write func(ctx *gin.Context)) (int, JSONResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	write(ctx)

	var resp JSONResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestSuccessEnvelope(t *testing.T) {
	status, resp := envelopeFor(t, func(ctx *gin.Context) {
		Success(ctx, gin.H{"points": 10})
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(10), data["points"])
}

func TestErrorEnvelope(t *testing.T) {
	status, resp := envelopeFor(t, func(ctx *gin.Context) {
		Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 40011, resp.Code)
	assert.Equal(t, "invalid request payload", resp.Message)
	assert.Nil(t, resp.Data)
}
