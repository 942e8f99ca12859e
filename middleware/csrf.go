package middleware

import (
	"context"
	"net/http"

	"brigadas_admin_go/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CSRFKey is where the token is kept in the request context for templates
const CSRFKey contextKey = "csrf_token"

// CSRFFormField is the form field name checked by echo's CSRF middleware
const CSRFFormField = "_csrf"

// CSRF configures echo's CSRF middleware for the admin forms.
// HTMX requests send the token in the X-CSRF-Token header.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	return echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + CSRFFormField + ",header:X-CSRF-Token",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg != nil && cfg.Environment == "production",
		CookieSameSite: http.SameSiteStrictMode,
	})
}

// GetCSRFToken retrieves the CSRF token set by echo's CSRF middleware
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFToContext copies the CSRF token into the request context so templ
// components can render it. Must run after echo's CSRF middleware.
func CSRFToContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), CSRFKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// CSRFTokenFromContext returns the token stored by CSRFToContext
func CSRFTokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(CSRFKey).(string); ok {
		return val
	}
	return ""
}
