package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"brigadas_admin_go/config"
	"brigadas_admin_go/db"
	"brigadas_admin_go/middleware"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/api"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// recordAudit writes audit rows; tests swap it for the synchronous variant
var recordAudit = services.LogAuditEvent

// getConfig returns the config placed on the context by the server, or the defaults
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return cfg
	}
	return &config.Config{Environment: "development", DraftTTL: services.DefaultDraftTTL}
}

// render writes a full page or partial with the given status
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// brigadaID parses the :id route parameter
func brigadaID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid brigade id")
	}
	return id, nil
}

// remoteStatus maps a remote failure to the status of the error page
func remoteStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func logRemoteError(op string, id int, err error) {
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	if id > 0 {
		fields = append(fields, zap.Int("brigada_id", id))
	}
	zap.L().Error("remote call failed", fields...)
}

func audit(c echo.Context, ev services.AuditEvent) {
	if db.DB == nil {
		return
	}
	recordAudit(db.DB, middleware.GetAuditContext(c), ev)
}
