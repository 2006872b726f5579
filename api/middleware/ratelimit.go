package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"summarly/config"
	"summarly/dto"
)

// RateLimit throttles requests per client IP with a token bucket.
// A RequestsPerMinute of zero or less disables the middleware.
type rateLimiters struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMinute
	}
	limiters := &rateLimiters{
		perIP: map[string]*rate.Limiter{},
		limit: rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst: burst,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: "rate_limit_exceeded"})
			return
		}
		c.Next()
	}
}

func (l *rateLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.perIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perIP[ip] = lim
	}
	return lim
}
