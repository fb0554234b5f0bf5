package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/media"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and APIError body.
// notFoundCode is the code used when err wraps models.ErrNotFound.
func respondError(ctx *gin.Context, err error, notFoundCode string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, models.NewValidationError(verr.Fields))
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFoundCode, err.Error()))
	case errors.Is(err, media.ErrTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, models.NewAPIError(models.ErrPayloadTooLarge, media.ErrTooLarge.Error()))
	case errors.Is(err, media.ErrUnsupportedType):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvoiceImageInvalid, media.ErrUnsupportedType.Error()))
	case errors.Is(err, media.ErrEmpty):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvoiceImageInvalid, media.ErrEmpty.Error()))
	default:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}
