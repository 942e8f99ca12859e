package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthzHandler reports liveness; it does not call the remote service
func HealthzHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// FallbackHandler sends unknown paths to the dashboard
func FallbackHandler(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}
