package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"session-todo/config"
	"session-todo/pkg/response"
)

// RateLimit rejects clients that exceed the configured request rate with 429.
// It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	size := cfg.MaxTrackedIPs
	if size <= 0 {
		size = 1000
	}
	ttl := cfg.TrackedIPExpiry
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
