package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/gin-gonic/gin"
)

// NotificationController exposes the transient banners
type NotificationController interface {
	ListNotifications(c *gin.Context)
	DismissNotification(c *gin.Context)
}

type notificationController struct {
	service services.NotificationService
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(service services.NotificationService) NotificationController {
	return &notificationController{service: service}
}

// ListNotifications godoc
// @Summary Active notifications
// @Description Banners raised by recent changes; each disappears on its own after a few seconds
// @Tags notifications
// @Produce json
// @Success 200 {array} notify.Toast
// @Router /api/v1/notifications [get]
func (c *notificationController) ListNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.ListNotifications())
}

// DismissNotification godoc
// @Summary Dismiss a notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/notifications/{id} [delete]
func (c *notificationController) DismissNotification(ctx *gin.Context) {
	if err := c.service.DismissNotification(ctx.Param("id")); err != nil {
		respondError(ctx, err, models.ErrNotFoundCode)
		return
	}
	ctx.Status(http.StatusNoContent)
}
