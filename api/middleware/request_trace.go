package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-Id"
	ctxKeyRequestID = "request_id"
)

// RequestTrace guarantees a request id for every inbound request, stored on
// the gin context and echoed in the response header.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ctxKeyRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}

// RequestID returns the request id set by RequestTrace, or "" outside of it.
func RequestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
