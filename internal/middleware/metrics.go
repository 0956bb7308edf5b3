package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"domainscout/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request to every recorder. The path is
// the route template, so prefs routes do not explode into one series per
// client id.
func Metrics(recorders ...HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			}
			for _, r := range recorders {
				r.RecordHTTP(m)
			}

			return err
		}
	}
}
