package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter stores rate limiters for different IPs
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	mutex    sync.RWMutex
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// GetLimiter returns a rate limiter for the given key
func (rl *RateLimiter) GetLimiter(key string, lim rate.Limit, burst int) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(lim, burst)
		rl.limiters[key] = limiter
	}
	rl.lastSeen[key] = time.Now()

	return limiter
}

// cleanupLoop removes old limiters to prevent memory leaks
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		now := time.Now()
		for key, t := range rl.lastSeen {
			if now.Sub(t) > time.Hour {
				delete(rl.limiters, key)
				delete(rl.lastSeen, key)
			}
		}
		rl.mutex.Unlock()
	}
}

var globalRateLimiter = NewRateLimiter()

// RateLimitMiddleware implements per-IP rate limiting
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		// Search and detail reads are polled by the client, allow more
		var lim rate.Limit
		var burst int
		if c.Request.Method == http.MethodGet {
			lim = rate.Every(time.Second / 5)
			burst = 30
		} else {
			lim = rate.Every(time.Second)
			burst = 10
		}

		limiter := globalRateLimiter.GetLimiter(key, lim, burst)
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests, please slow down",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthRateLimitMiddleware implements stricter rate limiting for auth endpoints
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "auth|" + c.ClientIP()

		limiter := globalRateLimiter.GetLimiter(key, rate.Every(time.Minute/10), 10)
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many authentication attempts, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SecurityHeadersMiddleware sets common security headers
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
