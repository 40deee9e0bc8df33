// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// PaginationParams carries the listing controls shared by the catalog and
// order endpoints: page window, sort column and direction, plus the optional
// text-search, category and price-range filters.
type PaginationParams struct {
	Page     int      `json:"page"`
	Limit    int      `json:"limit"`
	Sort     string   `json:"sort"`
	Order    string   `json:"order"`
	Search   string   `json:"search"`
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// GetPaginationParams reads the listing query string. Out-of-range pages and
// limits fall back to the defaults rather than erroring, and unparseable
// price bounds are dropped.
func GetPaginationParams(c *gin.Context) PaginationParams {
	params := PaginationParams{
		Page:     queryInt(c, "page", defaultPage),
		Limit:    queryInt(c, "limit", defaultLimit),
		Sort:     c.DefaultQuery("sort", "created_at"),
		Order:    c.DefaultQuery("order", "desc"),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
	}

	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.Limit < 1 || params.Limit > maxLimit {
		params.Limit = defaultLimit
	}
	if params.Order != "asc" && params.Order != "desc" {
		params.Order = "desc"
	}

	return params
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset((params.Page - 1) * params.Limit).Limit(params.Limit)
}

// ApplySort orders by the requested column when it appears on the allow
// list, otherwise by creation time. The allow list keeps raw query input out
// of the ORDER BY clause.
func ApplySort(db *gorm.DB, params PaginationParams, allowed []string) *gorm.DB {
	column := "created_at"
	for _, field := range allowed {
		if field == params.Sort {
			column = params.Sort
			break
		}
	}
	return db.Order(column + " " + params.Order)
}

func CreatePaginationResult(data interface{}, total int64, params PaginationParams) PaginationResult {
	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
		Data:       data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
