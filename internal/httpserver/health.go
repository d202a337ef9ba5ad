package httpserver

import (
	"github.com/gin-gonic/gin"

	"someday-maybe/pkg/response"
)

// Health response constants.
const (
	HealthMessage = "someday-maybe is up"
	HealthVersion = "1.0.0"
	ServiceName   = "someday-maybe"
)

type healthResp struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Version string   `json:"version"`
	Service string   `json:"service"`
	Domains []string `json:"domains,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck lists the domains that were wired at startup.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := newHealthResp("ready")
	resp.Domains = []string{"board", "attachments", "holidays"}
	response.OK(c, resp)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
