package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler(t *testing.T) {
	database := setupTestDB(t)
	fake := setupFake(t)

	day := func(d int) models.RemoteTime {
		return models.RemoteTime{Time: time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)}
	}
	fake.AddBrigada(models.Brigada{ID: 1, NombreBrigada: "Brigada Norte", CantidadBomberosActivos: 10, Activo: true, FechaRegistro: day(1)})
	fake.AddBrigada(models.Brigada{ID: 2, NombreBrigada: "Brigada Sur", CantidadBomberosActivos: 7, Activo: true, FechaRegistro: day(5)})
	fake.AddBrigada(models.Brigada{ID: 3, NombreBrigada: "Brigada Inactiva", CantidadBomberosActivos: 4, FechaRegistro: day(3)})

	require.NoError(t, services.RecordAuditEvent(database, services.AuditContext{Actor: "admin"}, services.AuditEvent{
		Action:       models.AuditActionCreate,
		ResourceType: "Brigada",
		ResourceID:   "2",
		Description:  "Brigada creada exitosamente: Brigada Sur",
	}))

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	require.NoError(t, DashboardHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Panel de control")
	assert.Contains(t, body, `<div class="value">3</div>`)
	assert.Contains(t, body, `<div class="value">2</div>`)
	assert.Contains(t, body, `<div class="value">21</div>`, "firefighters of inactive brigades count")
	assert.Contains(t, body, "05/03/2024")
	assert.Contains(t, body, "Brigada creada exitosamente: Brigada Sur")
	assert.Contains(t, body, `href="/brigadas/completa"`)
}

func TestDashboardHandler_RemoteFailure(t *testing.T) {
	setupTestDB(t)
	fake := setupFake(t)
	fake.FailOn("ListBrigadas", errors.New("connection refused"))

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	require.NoError(t, DashboardHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al cargar las brigadas")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
