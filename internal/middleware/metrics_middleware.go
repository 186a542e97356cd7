package middleware

import (
	"errors"
	"myBestDeals/pkg/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records latency and count of every request by route.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil && errors.As(err, &he) {
				status = he.Code
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}
