package middleware

import (
	"strconv"

	"ecycle/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware counts every handled request by method, route and status.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the request counting middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Process records the request after the handler has run, using the route
// pattern (not the raw URL) to keep the label cardinality bounded.
func (m *MetricsMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			// Run the error handler now so the recorded status is the real one.
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()

		return err
	}
}
