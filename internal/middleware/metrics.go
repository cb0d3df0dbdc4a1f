package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockmetrics/internal/metrics"
)

// Metrics records request count and latency labelled by the route template,
// keeping label cardinality bounded. Unmatched paths share one label.
func Metrics(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
