// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dethrtrns/techwondoe-test-task/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests: request totals by method/path/status, a duration histogram, and
// an in-flight gauge.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()

		// Use a fixed label for unmatched routes to keep cardinality bounded.
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
