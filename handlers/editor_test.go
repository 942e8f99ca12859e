package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"brigadas_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBrigadaHandler(t *testing.T) {
	database := setupTestDB(t)
	fake := setupFake(t)

	t.Run("Valid", func(t *testing.T) {
		c, rec := postForm("/brigadas/nueva", url.Values{
			"NombreBrigada":           {"  Brigada <b>Este</b> "},
			"CantidadBomberosActivos": {"8"},
		})
		require.NoError(t, CreateBrigadaHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Brigada creada exitosamente")
		assert.Contains(t, body, `content="2;url=/brigadas"`)
		assert.Contains(t, body, "1500)")

		creates := fake.CallsWithPrefix("CreateBrigada")
		require.Len(t, creates, 1)
		req := creates[0].Body.(models.BrigadaRequest)
		assert.Equal(t, "Brigada Este", req.NombreBrigada)
		assert.Equal(t, 8, req.CantidadBomberosActivos)
		assert.Empty(t, fake.CallsWithPrefix("CreateRopa"))
		assert.Equal(t, []models.AuditAction{models.AuditActionCreate}, auditActions(t, database))
	})

	t.Run("BlankName", func(t *testing.T) {
		fake.Reset()
		c, rec := postForm("/brigadas/nueva", url.Values{
			"NombreBrigada":           {"   "},
			"CantidadBomberosActivos": {"3"},
		})
		require.NoError(t, CreateBrigadaHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "El nombre de la brigada es requerido")
		assert.Empty(t, fake.Calls())
	})

	t.Run("ShortNameAccepted", func(t *testing.T) {
		fake.Reset()
		c, rec := postForm("/brigadas/nueva", url.Values{
			"NombreBrigada":           {"B1"},
			"CantidadBomberosActivos": {"3"},
		})
		require.NoError(t, CreateBrigadaHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, fake.CallsWithPrefix("CreateBrigada"), 1)
	})

	t.Run("ZeroFirefighters", func(t *testing.T) {
		fake.Reset()
		c, rec := postForm("/brigadas/nueva", url.Values{
			"NombreBrigada":           {"Brigada Oeste"},
			"CantidadBomberosActivos": {"abc"},
		})
		require.NoError(t, CreateBrigadaHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "La cantidad de bomberos debe ser mayor a 0")
	})
}

func TestUpdateBrigadaHandler(t *testing.T) {
	setupTestDB(t)
	fake := setupFake(t)
	fake.AddBrigada(models.Brigada{ID: 3, NombreBrigada: "Brigada Tres", CantidadBomberosActivos: 2})

	t.Run("EditPage", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas/editar/3", nil)
		require.NoError(t, EditBrigadaPageHandler(withID(c, "3")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="Brigada Tres"`)
		assert.Contains(t, rec.Body.String(), `action="/brigadas/editar/3"`)
	})

	t.Run("EditPageLoadFailure", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/brigadas/editar/42", nil)
		require.NoError(t, EditBrigadaPageHandler(withID(c, "42")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error al cargar la brigada")
	})

	t.Run("Success", func(t *testing.T) {
		c, rec := postForm("/brigadas/editar/3", url.Values{
			"NombreBrigada":           {"Brigada Tres Renovada"},
			"CantidadBomberosActivos": {"6"},
		})
		require.NoError(t, UpdateBrigadaHandler(withID(c, "3")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Brigada actualizada exitosamente")
		b, err := fake.GetBrigada(c.Request().Context(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Brigada Tres Renovada", b.NombreBrigada)
		assert.Empty(t, fake.CallsWithPrefix("Delete"), "the simple editor leaves equipment alone")
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		fake.FailOn("UpdateBrigada", errors.New("503"))
		defer fake.FailOn("UpdateBrigada", nil)

		c, rec := postForm("/brigadas/editar/3", url.Values{
			"NombreBrigada":           {"Brigada Tres"},
			"CantidadBomberosActivos": {"6"},
		})
		require.NoError(t, UpdateBrigadaHandler(withID(c, "3")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error al guardar la brigada")
		assert.NotContains(t, rec.Body.String(), "503")
	})
}
