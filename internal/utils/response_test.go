// internal/utils/response_test.go
package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginatedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	result := CreatePaginationResult([]string{"a", "b"}, 41, PaginationParams{Page: 2, Limit: 20})
	PaginatedResponse(c, result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "41", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "3", w.Header().Get("X-Total-Pages"))

	var envelope APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	meta, ok := envelope.Meta.(map[string]interface{})
	assert.True(t, ok)
	pagination, ok := meta["pagination"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(41), pagination["total"])
}
