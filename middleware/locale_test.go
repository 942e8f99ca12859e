package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"brigadas_admin_go/config"
	"brigadas_admin_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLocale(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reqLang string
	handler := Locale(&config.Config{Environment: "development"})(func(c echo.Context) error {
		reqLang = i18n.GetLocale(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, GetLocale(c), reqLang, "echo and request contexts agree")
	return c, rec
}

func TestLocale(t *testing.T) {
	t.Run("PriorityQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "es"})
		c, rec := runLocale(t, req)

		assert.Equal(t, "en", GetLocale(c))
		found := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == LangCookieName {
				assert.Equal(t, "en", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("UnsupportedQueryParam", func(t *testing.T) {
		c, _ := runLocale(t, httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
		assert.Equal(t, "es", GetLocale(c))
	})

	t.Run("PriorityCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
		req.Header.Set("Accept-Language", "es-BO")
		c, _ := runLocale(t, req)
		assert.Equal(t, "en", GetLocale(c))
	})

	t.Run("PriorityHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,en-US;q=0.8,es;q=0.5")
		c, _ := runLocale(t, req)
		assert.Equal(t, "en", GetLocale(c))
	})

	t.Run("DefaultLanguage", func(t *testing.T) {
		c, _ := runLocale(t, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "es", GetLocale(c))
	})
}

func TestGetLocale_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "es", GetLocale(c))
}
