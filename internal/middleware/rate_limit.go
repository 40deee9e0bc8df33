// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// client tracks one remote IP. lastSeen drives eviction of idle entries.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands every remote IP its own token bucket.
type IPRateLimiter struct {
	mtx     sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
	}
	go rl.evictIdle()
	return rl
}

func (rl *IPRateLimiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.mtx.Lock()
		for ip, cl := range rl.clients {
			if time.Since(cl.lastSeen) > 5*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Storefront tiers: catalog browsing is read-heavy so the general bucket
// refills fast; login/register and image uploads are throttled hard because
// both are abuse targets.
var (
	generalLimiter = NewIPRateLimiter(rate.Limit(20), 40)            // sustained 20 req/s
	authLimiter    = NewIPRateLimiter(rate.Every(12*time.Second), 5) // 5 attempts/minute
	uploadLimiter  = NewIPRateLimiter(rate.Every(6*time.Second), 10) // 10 uploads/minute
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}
