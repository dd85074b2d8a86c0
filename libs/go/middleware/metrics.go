package middleware

import (
	"strconv"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency by method, matched route and status.
// Unmatched routes are grouped under "unmatched" to bound label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
