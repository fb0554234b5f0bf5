package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the request log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the key used to store the request id in context
type requestIDKey struct{}

// RequestID ensures every request has a stable request id.
// An incoming X-Request-Id is reused, otherwise a new UUID is generated.
// The id is stored in the gin context and the request context as
// "request_id" and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(RequestIDHeader, rid)

		c.Next()
	}
}

// GetRequestID extracts the request id from a standard context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger writes one structured log line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c.Request.Context()),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}

// RequireLoaded answers 503 until loaded reports true, so no request sees
// the empty state that exists before hydration.
func RequireLoaded(loaded func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loaded() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, models.NewAPIError(
				models.ErrStateLoading, "Data is still loading, retry shortly"))
			c.Abort()
			return
		}
		c.Next()
	}
}
