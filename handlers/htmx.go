package handlers

import (
	"github.com/labstack/echo/v4"
)

// isHTMXRequest reports whether the request came from htmx and expects a partial
func isHTMXRequest(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
