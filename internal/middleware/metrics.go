package middleware

import (
	"strconv"
	"time"

	"github.com/amd4k/ZHV/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency labelled by route pattern
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			m.ObserveHTTP(c.Request().Method, path, status, time.Since(start))

			return nil
		}
	}
}
