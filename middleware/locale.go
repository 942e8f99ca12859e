package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"brigadas_admin_go/config"
	"brigadas_admin_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const (
	// LangCookieName stores the chosen language
	LangCookieName = "lang"
	// ContextKeyLocale is the echo context key of the request language
	ContextKeyLocale = "locale"
)

// Locale detects the request language.
// Priority: query param "lang" (persisted in a cookie), cookie, Accept-Language, default "es".
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = i18n.DefaultLang
				}
				setLanguageCookie(c, cfg, lang)
			} else if cookie, err := c.Cookie(LangCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set(ContextKeyLocale, lang)
			ctx := context.WithValue(c.Request().Context(), i18n.LocaleContextKey, lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// fromAcceptLanguage picks the first supported primary tag of the header
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if i18n.IsSupported(primary) {
			return primary
		}
	}
	return i18n.DefaultLang
}

func setLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	cookie := &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg != nil && cfg.Environment == "production",
	}
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get(ContextKeyLocale).(string); ok {
		return lang
	}
	return i18n.DefaultLang
}
