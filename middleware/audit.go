package middleware

import (
	"brigadas_admin_go/services"

	"github.com/labstack/echo/v4"
)

const ContextKeyAuditContext = "audit_context"

// AuditContext records who is making the request for the audit trail.
// Must run after AdminAuth.
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := services.AuditContext{
				Actor:     GetAdminUser(c),
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			}
			if ctx.Actor == "" {
				ctx.Actor = services.AnonymousActor
			}

			c.Set(ContextKeyAuditContext, ctx)
			return next(c)
		}
	}
}

// GetAuditContext retrieves the audit context from the request
func GetAuditContext(c echo.Context) services.AuditContext {
	if ctx, ok := c.Get(ContextKeyAuditContext).(services.AuditContext); ok {
		return ctx
	}
	return services.AuditContext{Actor: services.AnonymousActor}
}
