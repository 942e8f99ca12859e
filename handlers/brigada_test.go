package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"brigadas_admin_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBrigadasHandler(t *testing.T) {
	setupTestDB(t)
	fake := setupFake(t)
	fake.AddBrigada(models.Brigada{ID: 1, NombreBrigada: "Brigada Norte", EncargadoLogistica: "Ana Pérez", ContactoCelularComandante: "70012345"})
	fake.AddBrigada(models.Brigada{ID: 2, NombreBrigada: "Brigada Sur", EncargadoLogistica: "Luis Rojas", ContactoCelularComandante: "71199999"})

	t.Run("FullPage", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas", nil)
		require.NoError(t, ListBrigadasHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "Brigada Norte")
		assert.Contains(t, body, "Brigada Sur")
		assert.Contains(t, body, `href="/brigadas/2/eliminar"`)
	})

	t.Run("HTMXSearchReturnsTableOnly", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas?q=ANA", nil)
		c.Request().Header.Set("HX-Request", "true")
		require.NoError(t, ListBrigadasHandler(c))

		body := rec.Body.String()
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, `id="brigadas-table"`)
		assert.Contains(t, body, "Brigada Norte")
		assert.NotContains(t, body, "Brigada Sur")
	})

	t.Run("PhoneSearch", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas?q=711", nil)
		c.Request().Header.Set("HX-Request", "true")
		require.NoError(t, ListBrigadasHandler(c))

		assert.Contains(t, rec.Body.String(), "Brigada Sur")
		assert.NotContains(t, rec.Body.String(), "Brigada Norte")
	})

	t.Run("NoResults", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas?q=zzz", nil)
		c.Request().Header.Set("HX-Request", "true")
		require.NoError(t, ListBrigadasHandler(c))

		assert.Contains(t, rec.Body.String(), "No se encontraron brigadas")
	})
}

func TestListBrigadasHandler_RemoteFailure(t *testing.T) {
	setupTestDB(t)
	fake := setupFake(t)
	fake.FailOn("ListBrigadas", errors.New("timeout"))

	_, c, rec := setupEcho(http.MethodGet, "/brigadas", nil)
	require.NoError(t, ListBrigadasHandler(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al cargar las brigadas")
}

func TestBrigadaDetailHandler(t *testing.T) {
	setupTestDB(t)
	fake := setupFake(t)
	fake.AddBrigada(models.Brigada{ID: 4, NombreBrigada: "Brigada Cuatro", CantidadBomberosActivos: 9})
	fake.AddRopa(4, models.EquipamientoRopa{TipoRopaID: 1, TipoRopaNombre: "Camisa forestal", CantidadS: 2, CantidadM: 3})
	fake.AddBotas(4, models.EquipamientoBotas{Talla40: 6, OtraTalla: "46", CantidadOtraTalla: 1})
	fake.AddGenerico(4, models.EquipamientoGenerico{Categoria: models.CategoriaServiciosVehiculos, TipoID: 2, TipoNombre: "Combustible", Cantidad: 1, MontoAproximado: 350.5})

	t.Run("Found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas/4", nil)
		require.NoError(t, BrigadaDetailHandler(withID(c, "4")))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Brigada Cuatro")
		assert.Contains(t, body, "Camisa forestal")
		assert.Contains(t, body, "<td>5</td>", "clothing row total")
		assert.Contains(t, body, "46: 1")
		assert.Contains(t, body, "Combustible")
		assert.Contains(t, body, "350,5")
		assert.Contains(t, body, `href="/brigadas/4/export.pdf"`)
	})

	t.Run("Missing", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas/99", nil)
		require.NoError(t, BrigadaDetailHandler(withID(c, "99")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error al cargar los detalles de la brigada")
		assert.Contains(t, rec.Body.String(), `href="/brigadas"`)
	})

	t.Run("EquipmentFailureFailsPage", func(t *testing.T) {
		fake.FailOn("GetGenerico/medicamentos", errors.New("boom"))
		defer fake.FailOn("GetGenerico/medicamentos", nil)

		_, c, rec := setupEcho(http.MethodGet, "/brigadas/4", nil)
		require.NoError(t, BrigadaDetailHandler(withID(c, "4")))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/brigadas/abc", nil)
		err := BrigadaDetailHandler(withID(c, "abc"))

		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestDeleteBrigada(t *testing.T) {
	database := setupTestDB(t)
	fake := setupFake(t)
	fake.AddBrigada(models.Brigada{ID: 5, NombreBrigada: "Brigada Cinco"})

	t.Run("ConfirmPage", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas/5/eliminar", nil)
		require.NoError(t, DeleteBrigadaPageHandler(withID(c, "5")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "¿Está seguro de que desea eliminar la brigada Brigada Cinco?")
		assert.Contains(t, rec.Body.String(), `action="/brigadas/5/eliminar"`)
	})

	t.Run("Failure", func(t *testing.T) {
		fake.FailOn("DeleteBrigada", errors.New("500"))
		c, rec := postForm("/brigadas/5/eliminar", url.Values{})
		require.NoError(t, DeleteBrigadaHandler(withID(c, "5")))
		fake.FailOn("DeleteBrigada", nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error al eliminar la brigada")
		assert.Empty(t, auditActions(t, database))
	})

	t.Run("Success", func(t *testing.T) {
		c, rec := postForm("/brigadas/5/eliminar", url.Values{})
		require.NoError(t, DeleteBrigadaHandler(withID(c, "5")))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/brigadas", rec.Header().Get("Location"))
		assert.Equal(t, []models.AuditAction{models.AuditActionDelete}, auditActions(t, database))
		assert.Empty(t, fake.CallsWithPrefix("DeleteRopa"), "equipment is not cascaded")

		_, err := fake.GetBrigada(c.Request().Context(), 5)
		assert.Error(t, err)
	})
}
