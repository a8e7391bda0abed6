package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"

	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"
)

// RequestID assigns each request a UUID unless the client supplied one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
