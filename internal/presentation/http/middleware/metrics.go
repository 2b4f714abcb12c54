package middleware

import (
	"strconv"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/monitoring"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency per route template and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		monitoring.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}
}
