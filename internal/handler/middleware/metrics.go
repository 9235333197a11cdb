package middleware

import (
	"time"

	"therapist-management-saas/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics labels requests by route template so path params do not explode cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
