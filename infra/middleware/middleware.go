package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"simai/pkg/metrics"
)

// CountRequests records every control API request by method, route and
// final status.
func CountRequests(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := handlerFunc(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		route := c.Path()
		if route == "" {
			route = "desconhecida"
		}
		metrics.ControlRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()

		return err
	}
}
