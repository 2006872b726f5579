package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"summarly/api/middleware"
	"summarly/config"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", middleware.RateLimit(cfg), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitExceeded(t *testing.T) {
	r := newLimitedRouter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 3})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, do(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1"))
}

func TestRateLimitPerIP(t *testing.T) {
	r := newLimitedRouter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1})

	assert.Equal(t, http.StatusNoContent, do(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1"))
	// a different client has its own bucket
	assert.Equal(t, http.StatusNoContent, do(r, "10.0.0.2"))
}

func TestRateLimitDisabled(t *testing.T) {
	r := newLimitedRouter(config.RateLimitConfig{})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusNoContent, do(r, "10.0.0.1"))
	}
}
