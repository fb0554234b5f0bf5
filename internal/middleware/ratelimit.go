package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles state changing requests with a shared token bucket.
// GET, HEAD and OPTIONS pass through. A non-positive rps disables it.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, models.NewAPIError(
				models.ErrTooManyRequests, "Too many changes, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
