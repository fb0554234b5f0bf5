package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardController serves the dashboard figures
type DashboardController interface {
	GetDashboard(c *gin.Context)
}

type dashboardController struct {
	service services.DashboardService
}

// NewDashboardController creates a new instance of DashboardController
func NewDashboardController(service services.DashboardService) DashboardController {
	return &dashboardController{service: service}
}

// GetDashboard godoc
// @Summary Dashboard figures
// @Description Recipe and invoice counts, average margin, total spent and the three most recent invoices
// @Tags dashboard
// @Produce json
// @Success 200 {object} costing.Stats
// @Router /api/v1/dashboard [get]
func (c *dashboardController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.GetStats())
}
