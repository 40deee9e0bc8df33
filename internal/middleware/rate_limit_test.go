// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiterRejectsBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Tiny bucket: two tokens, refilled far too slowly to matter here.
	rl := NewIPRateLimiter(rate.Every(time.Hour), 2)

	r := gin.New()
	r.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestIPRateLimiterTracksClientsSeparately(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewIPRateLimiter(rate.Every(time.Hour), 1)

	r := gin.New()
	r.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	first := httptest.NewRequest("GET", "/ping", nil)
	first.Header.Set("X-Forwarded-For", "10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same IP is out of tokens
	again := httptest.NewRequest("GET", "/ping", nil)
	again.Header.Set("X-Forwarded-For", "10.0.0.1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, again)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different IP still has its own bucket
	other := httptest.NewRequest("GET", "/ping", nil)
	other.Header.Set("X-Forwarded-For", "10.0.0.2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}
