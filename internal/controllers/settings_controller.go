package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/gin-gonic/gin"
)

// SettingsController handles display preferences and the data export
type SettingsController interface {
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
	ToggleDarkMode(c *gin.Context)
	Export(c *gin.Context)
}

type settingsController struct {
	service services.SettingsService
}

// NewSettingsController creates a new instance of SettingsController
func NewSettingsController(service services.SettingsService) SettingsController {
	return &settingsController{service: service}
}

// GetSettings godoc
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /api/v1/settings [get]
func (c *settingsController) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.GetSettings())
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Change the display name, dark mode or both. Omitted fields keep their value.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body models.SettingsUpdate true "Fields to change"
// @Success 200 {object} models.Settings
// @Failure 400 {object} models.APIError
// @Router /api/v1/settings [put]
func (c *settingsController) UpdateSettings(ctx *gin.Context) {
	var update models.SettingsUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	settings, err := c.service.UpdateSettings(update)
	if err != nil {
		respondError(ctx, err, models.ErrNotFoundCode)
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// ToggleDarkMode godoc
// @Summary Toggle dark mode
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /api/v1/settings/dark-mode/toggle [post]
func (c *settingsController) ToggleDarkMode(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.ToggleDarkMode())
}

// Export godoc
// @Summary Export data
// @Description All recipes and invoices with the export time, as indented JSON
// @Tags settings
// @Produce json
// @Success 200 {object} models.Export
// @Router /api/v1/export [get]
func (c *settingsController) Export(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, c.service.Export())
}
