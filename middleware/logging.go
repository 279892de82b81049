package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const slowRequestThreshold = 2 * time.Second

// RequestLogger logs every request as structured JSON with a request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration,
			"remote_ip":  c.ClientIP(),
		}

		if duration > slowRequestThreshold {
			logrus.WithFields(fields).Warn("Slow request detected")
		} else {
			logrus.WithFields(fields).Info("Request completed")
		}
	}
}
