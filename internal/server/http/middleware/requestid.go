package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries request identifier in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey stores request identifier inside gin context.
	RequestIDContextKey = "requestID"
)

// RequestID tags every request with an identifier, reusing a client supplied one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// CurrentRequestID extracts request identifier from context.
func CurrentRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
