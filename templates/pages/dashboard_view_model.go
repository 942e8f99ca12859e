package pages

import (
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
)

// DashboardViewModel holds the data for the dashboard
type DashboardViewModel struct {
	Stats    *services.DashboardStats
	Activity []models.AuditLog
	// Error replaces the statistics when the brigade list could not be loaded
	Error string
	Now   time.Time
}
