package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"brigadas_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// fakeService serves canned envelopes keyed by "METHOD /path"
type fakeService struct {
	mu        sync.Mutex
	responses map[string]string
	statuses  map[string]int
	requests  []recordedRequest
}

func newFakeService(t *testing.T) (*fakeService, *Client) {
	fs := &fakeService{
		responses: make(map[string]string),
		statuses:  make(map[string]int),
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}

		fs.mu.Lock()
		fs.requests = append(fs.requests, rec)
		body, ok := fs.responses[key]
		status := fs.statuses[key]
		fs.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found"}`))
			return
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return fs, NewClient(server.URL+"/api", 5*time.Second, nil)
}

func (fs *fakeService) on(method, path, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.responses[method+" /api"+path] = body
}

func (fs *fakeService) onStatus(method, path string, status int, body string) {
	fs.on(method, path, body)
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.statuses[method+" /api"+path] = status
}

func (fs *fakeService) last() recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.requests[len(fs.requests)-1]
}

func TestListBrigadas(t *testing.T) {
	fs, client := newFakeService(t)
	fs.on(http.MethodGet, "/brigadas", `{"success":true,"data":[
		{"id":1,"nombre_brigada":"Brigada Central","cantidad_bomberos_activos":5,"fecha_registro":"2024-03-01T10:00:00Z","activo":true},
		{"id":2,"nombre_brigada":"Brigada Norte","cantidad_bomberos_activos":8,"fecha_registro":"2024-03-02 08:30:00","activo":false}
	]}`)

	brigadas, err := client.ListBrigadas(context.Background())
	require.NoError(t, err)
	require.Len(t, brigadas, 2)
	assert.Equal(t, "Brigada Central", brigadas[0].NombreBrigada)
	assert.Equal(t, 5, brigadas[0].CantidadBomberosActivos)
	assert.True(t, brigadas[0].Activo)
	assert.Equal(t, 2024, brigadas[1].FechaRegistro.Year())
	assert.Equal(t, 30, brigadas[1].FechaRegistro.Minute())
}

func TestEnvelopeFailures(t *testing.T) {
	t.Run("SuccessFalseOnHTTP200", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.on(http.MethodGet, "/brigadas", `{"success":false,"message":"db down"}`)

		_, err := client.ListBrigadas(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsuccessful))

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "ListBrigadas", apiErr.Op)
		assert.Equal(t, "db down", apiErr.Message)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	})

	t.Run("MissingData", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.on(http.MethodGet, "/brigadas/3", `{"success":true}`)

		_, err := client.GetBrigada(context.Background(), 3)
		assert.True(t, errors.Is(err, ErrMissingData))
	})

	t.Run("NullData", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.on(http.MethodGet, "/brigadas/3", `{"success":true,"data":null}`)

		_, err := client.GetBrigada(context.Background(), 3)
		assert.True(t, errors.Is(err, ErrMissingData))
	})

	t.Run("ServerError", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.onStatus(http.MethodDelete, "/brigadas/9", http.StatusInternalServerError, `{"success":false,"message":"boom"}`)

		err := client.DeleteBrigada(context.Background(), 9)
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Message)
		assert.Contains(t, apiErr.Error(), "DELETE /brigadas/9")
	})

	t.Run("TransportError", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1/api", time.Second, nil)
		_, err := client.ListBrigadas(context.Background())
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.NotErrorIs(t, err, ErrUnsuccessful)
	})
}

func TestCreateBrigada(t *testing.T) {
	t.Run("SendsPascalCasePayload", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.on(http.MethodPost, "/brigadas", `{"success":true,"data":{"id":42,"nombre_brigada":"Brigada Central"}}`)

		created, err := client.CreateBrigada(context.Background(), models.BrigadaRequest{
			NombreBrigada:           "Brigada Central",
			CantidadBomberosActivos: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 42, created.ID)

		req := fs.last()
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "Brigada Central", req.Body["NombreBrigada"])
		assert.EqualValues(t, 5, req.Body["CantidadBomberosActivos"])
	})

	t.Run("MissingID", func(t *testing.T) {
		fs, client := newFakeService(t)
		fs.on(http.MethodPost, "/brigadas", `{"success":true,"data":{"nombre_brigada":"Sin id"}}`)

		_, err := client.CreateBrigada(context.Background(), models.BrigadaRequest{NombreBrigada: "Sin id", CantidadBomberosActivos: 1})
		assert.True(t, errors.Is(err, ErrMissingData))
	})
}

func TestUpdateAndDeleteAcceptEmptyData(t *testing.T) {
	fs, client := newFakeService(t)
	fs.on(http.MethodPut, "/brigadas/7", `{"success":true,"message":"ok"}`)
	fs.on(http.MethodDelete, "/equipamiento/7/ropa", `{"success":true,"data":{"deleted":3}}`)

	assert.NoError(t, client.UpdateBrigada(context.Background(), 7, models.BrigadaRequest{NombreBrigada: "Brigada 7", CantidadBomberosActivos: 2}))
	assert.NoError(t, client.DeleteRopa(context.Background(), 7))
}

func TestGetCatalogo(t *testing.T) {
	fs, client := newFakeService(t)
	fs.on(http.MethodGet, "/catalogos/servicios-vehiculos", `{"success":true,"data":[{"id":3,"nombre":"Combustible","descripcion":"","activo":true}]}`)

	items, err := client.GetCatalogo(context.Background(), models.CatalogoServiciosVehiculos)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Combustible", items[0].Nombre)
}

func TestGenericRoutesAndFields(t *testing.T) {
	fs, client := newFakeService(t)
	fs.on(http.MethodGet, "/equipamiento/7/logistica-vehiculos", `{"success":true,"data":[
		{"id":1,"brigada_id":7,"servicio_vehiculo_id":3,"servicio_nombre":"Combustible","cantidad":2,"observaciones":"diesel","monto_aproximado":150.5}
	]}`)
	fs.on(http.MethodPost, "/equipamiento/7/logistica-vehiculos", `{"success":true,"data":{"id":10}}`)
	fs.on(http.MethodPost, "/equipamiento/7/rescate-animal", `{"success":true,"data":{"id":11}}`)

	rows, err := client.GetGenerico(context.Background(), 7, models.CategoriaServiciosVehiculos)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].TipoID)
	assert.Equal(t, "Combustible", rows[0].TipoNombre)
	assert.Equal(t, 150.5, rows[0].MontoAproximado)

	err = client.CreateGenerico(context.Background(), 7, models.CategoriaServiciosVehiculos, models.GenericoRequest{TipoID: 3, Cantidad: 2, MontoAproximado: 99})
	require.NoError(t, err)
	body := fs.last().Body
	assert.EqualValues(t, 3, body["ServicioVehiculoID"])
	assert.EqualValues(t, 2, body["Cantidad"])
	assert.EqualValues(t, 99, body["MontoAproximado"])

	err = client.CreateGenerico(context.Background(), 7, models.CategoriaAlimentosAnimales, models.GenericoRequest{TipoID: 4, Cantidad: 1, MontoAproximado: 99})
	require.NoError(t, err)
	body = fs.last().Body
	assert.EqualValues(t, 4, body["AlimentoAnimalID"])
	_, hasMonto := body["MontoAproximado"]
	assert.False(t, hasMonto)
}

func TestBotasAndGuantes(t *testing.T) {
	fs, client := newFakeService(t)
	fs.on(http.MethodGet, "/equipamiento/5/botas", `{"success":true,"data":[{"id":1,"brigada_id":5,"talla_40":3,"otra_talla":"45","cantidad_otra_talla":1}]}`)
	fs.on(http.MethodPost, "/equipamiento/5/guantes", `{"success":true,"data":{"id":2}}`)

	botas, err := client.GetBotas(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, botas, 1)
	assert.Equal(t, 4, botas[0].Total())

	err = client.CreateGuantes(context.Background(), 5, models.GuantesRequest{TallaXXL: 2, OtraTalla: "XXXL", CantidadOtraTalla: 1})
	require.NoError(t, err)
	body := fs.last().Body
	assert.EqualValues(t, 2, body["TallaXXL"])
	assert.Equal(t, "XXXL", body["OtraTalla"])
}
