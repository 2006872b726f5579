package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"summarly/logger"
)

// RequestLogging logs every request with its status and duration.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  RequestID(c),
		})
	}
}
