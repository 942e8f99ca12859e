package middleware

import (
	"crypto/subtle"

	"brigadas_admin_go/config"
	"brigadas_admin_go/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// ContextKeyAdmin is the echo context key of the authenticated admin user name
const ContextKeyAdmin = "admin_user"

// AdminAuth protects the admin pages with HTTP basic auth checked against a bcrypt hash.
// When no hash is configured every request passes and is recorded as anonymous.
func AdminAuth(cfg *config.Config) echo.MiddlewareFunc {
	if !cfg.AuthEnabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Realm: "Brigadas",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		Validator: func(user, password string, c echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUser)) == 1
			if !userOK || !services.CheckPassword(password, cfg.AdminPasswordHash) {
				zap.L().Warn("admin login rejected", zap.String("user", user), zap.String("ip", c.RealIP()))
				if services.Monitor != nil {
					services.Monitor.TrackFailedLogin(c.RealIP())
				}
				return false, nil
			}
			c.Set(ContextKeyAdmin, user)
			return true, nil
		},
	})
}

// GetAdminUser returns the authenticated admin, empty when auth is disabled
func GetAdminUser(c echo.Context) string {
	if user, ok := c.Get(ContextKeyAdmin).(string); ok {
		return user
	}
	return ""
}
