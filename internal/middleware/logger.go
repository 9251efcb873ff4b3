package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request through the service logger.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}

// Recovery turns panics into a 500 response and logs them.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic recovered: %v", err)
		c.AbortWithStatus(500)
	})
}
