package middleware

import (
	"time"

	"TokenScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per HTTP request.
func RequestLogging(l *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is final
				c.Error(err)
			}

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("route", c.Path()),
				logger.String("remote_ip", c.RealIP()),
				logger.Int("status", c.Response().Status),
				logger.Duration("duration_ms", time.Since(start)),
			}
			if err != nil {
				l.Warn("http request", append(fields, logger.Error(err))...)
				return nil
			}
			l.Info("http request", fields...)
			return nil
		}
	}
}
