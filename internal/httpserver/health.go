package httpserver

import (
	"github.com/gin-gonic/gin"

	"session-todo/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "session-todo"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready together with the number of live sessions.
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	data := srv.status("ready")
	if srv.sessions != nil {
		data["active_sessions"] = srv.sessions.Len()
	}
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}

func (srv *HTTPServer) status(s string) gin.H {
	return gin.H{
		"status":      s,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}
