package handlers

import (
	"net/http"
	"time"

	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware(parentLogger *logging.Logger) gin.HandlerFunc {
	logger := parentLogger.WithPrefix("HTTP")

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		logger.Debug("Request started",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote_addr", c.Request.RemoteAddr,
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		logger.Info("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// MetricsMiddleware считает запросы по шаблону маршрута.
func MetricsMiddleware(metrics *observability.SimulationCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
