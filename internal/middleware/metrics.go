package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"villa-be-svc/internal/metrics"
)

// Metrics records the count and latency of every request under its route template
func Metrics(collector metrics.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
