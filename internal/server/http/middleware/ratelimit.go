package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client IP. A non-positive limit disables it.
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	var limiters sync.Map
	limiterFor := func(ip string) *rate.Limiter {
		if l, ok := limiters.Load(ip); ok {
			return l.(*rate.Limiter)
		}
		l, _ := limiters.LoadOrStore(ip, rate.NewLimiter(rate.Limit(limit), burst))
		return l.(*rate.Limiter)
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
