package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-research-assistant/pkg/response"
)

// RateLimit rejects requests above the configured rate with 429. The limiter
// is global, not per client; classification calls fan out to paid LLM
// providers, so the cap protects the upstream quota.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
