package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SimulateLatency delays every handled API call by a fixed amount to emulate
// network behavior of a remote backend: reads settle faster than writes.
// The sleep respects request cancellation.
func SimulateLatency(read, write time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			delay := read
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
				delay = write
			}

			select {
			case <-time.After(delay):
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}

			return next(c)
		}
	}
}
