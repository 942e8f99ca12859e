package handlers

import (
	"net/http"
	"time"

	"brigadas_admin_go/db"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RecentActivityLimit is the number of audit entries on the dashboard
const RecentActivityLimit = 10

// DashboardHandler renders the brigade totals and recent activity
func DashboardHandler(c echo.Context) error {
	ctx := c.Request().Context()
	vm := pages.DashboardViewModel{Now: time.Now()}

	stats, err := services.LoadDashboard(ctx, services.API)
	if err != nil {
		logRemoteError("dashboard", 0, err)
		vm.Error = i18n.T(ctx, "dashboard.error")
	} else {
		vm.Stats = stats
	}

	if db.DB != nil {
		logs, err := services.RecentAuditLogs(db.DB, RecentActivityLimit)
		if err != nil {
			zap.L().Warn("recent audit logs", zap.Error(err))
		}
		vm.Activity = logs
	}

	return render(c, http.StatusOK, pages.Dashboard(vm))
}
