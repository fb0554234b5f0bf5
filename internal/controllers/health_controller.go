package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose availability can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
	Loaded    bool      `json:"loaded"`
}

// HealthController reports service health
type HealthController struct {
	service string
	version string
	storage Pinger
	loaded  func() bool
}

// NewHealthController creates a health controller probing storage
func NewHealthController(service, version string, storage Pinger, loaded func() bool) *HealthController {
	return &HealthController{service: service, version: version, storage: storage, loaded: loaded}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running, whether storage answers and whether data has loaded
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /health [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.service,
		Version:   h.version,
		Storage:   "up",
		Loaded:    h.loaded(),
	}

	pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	if err := h.storage.Ping(pingCtx); err != nil {
		resp.Status = "degraded"
		resp.Storage = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
