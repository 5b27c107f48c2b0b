package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Limiter decides whether a request from key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects requests with 429 once the client IP runs out of tokens.
func RateLimit(l Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": http.StatusText(http.StatusTooManyRequests),
				})
			}
			return next(c)
		}
	}
}
