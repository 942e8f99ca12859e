package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"brigadas_admin_go/config"
	"brigadas_admin_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(AdminAuth(cfg))
	e.GET("/brigadas", func(c echo.Context) error {
		return c.String(http.StatusOK, GetAdminUser(c))
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestAdminAuth(t *testing.T) {
	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	e := newAuthEcho(t, &config.Config{AdminUser: "admin", AdminPasswordHash: hash})

	t.Run("NoCredentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brigadas", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/brigadas", nil)
		req.SetBasicAuth("admin", "nope")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongUser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/brigadas", nil)
		req.SetBasicAuth("root", "s3cret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidCredentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/brigadas", nil)
		req.SetBasicAuth("admin", "s3cret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})

	t.Run("HealthzIsPublic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminAuth_Disabled(t *testing.T) {
	e := newAuthEcho(t, &config.Config{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brigadas", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAdminAuth_TracksRejections(t *testing.T) {
	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	e := newAuthEcho(t, &config.Config{AdminUser: "admin", AdminPasswordHash: hash})

	prev := services.Monitor
	services.Monitor = services.NewSecurityMonitor(nil)
	t.Cleanup(func() { services.Monitor = prev })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/brigadas", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		req.SetBasicAuth("admin", "wrong")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	alerts := services.Monitor.GetRecentAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "203.0.113.9", alerts[0].IP)
}
