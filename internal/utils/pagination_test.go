// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/products"+query, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.Category)
}

func TestGetPaginationParamsExplicit(t *testing.T) {
	params := paramsForQuery(t, "?page=3&limit=50&sort=price&order=asc&search=phone&category=electronics")

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "price", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "phone", params.Search)
	assert.Equal(t, "electronics", params.Category)
}

func TestGetPaginationParamsPriceBounds(t *testing.T) {
	params := paramsForQuery(t, "?min_price=10.5&max_price=99.99")

	if assert.NotNil(t, params.MinPrice) {
		assert.Equal(t, 10.5, *params.MinPrice)
	}
	if assert.NotNil(t, params.MaxPrice) {
		assert.Equal(t, 99.99, *params.MaxPrice)
	}
}

func TestGetPaginationParamsDropsBadPriceBounds(t *testing.T) {
	params := paramsForQuery(t, "?min_price=cheap&max_price=")

	assert.Nil(t, params.MinPrice)
	assert.Nil(t, params.MaxPrice)
}

func TestGetPaginationParamsClamps(t *testing.T) {
	params := paramsForQuery(t, "?page=0&limit=500&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a", "b"}, 41, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestSetPaginationHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetPaginationHeaders(c, PaginationResult{Page: 2, Limit: 20, Total: 41, TotalPages: 3})

	assert.Equal(t, "41", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", w.Header().Get("X-Page"))
	assert.Equal(t, "20", w.Header().Get("X-Per-Page"))
	assert.Equal(t, "3", w.Header().Get("X-Total-Pages"))
}
