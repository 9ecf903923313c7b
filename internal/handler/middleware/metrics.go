package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"repairbook/internal/pkg/metrics"
)

// MetricsMiddleware records request count and latency. The route
// template (not the raw URL) labels the series to keep cardinality
// bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTP(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
