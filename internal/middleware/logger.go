package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/pkg/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := l.WithFields(map[string]interface{}{
			"request_id": c.GetString(ContextRequestID),
			"method":     c.Request.Method,
			"path":       path,
			"client_ip":  c.ClientIP(),
			"status":     statusCode,
			"latency":    latency.String(),
		})

		switch {
		case statusCode >= 500:
			entry.Error(nil, "server error")
		case statusCode >= 400:
			entry.Warn("client error")
		default:
			entry.Info("request processed")
		}
	}
}
