package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"brigadas_admin_go/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Backend is every remote operation the application uses
type Backend interface {
	ListBrigadas(ctx context.Context) ([]models.Brigada, error)
	GetBrigada(ctx context.Context, id int) (*models.Brigada, error)
	CreateBrigada(ctx context.Context, req models.BrigadaRequest) (*models.Brigada, error)
	UpdateBrigada(ctx context.Context, id int, req models.BrigadaRequest) error
	DeleteBrigada(ctx context.Context, id int) error

	GetCatalogo(ctx context.Context, catalogo models.Catalogo) ([]models.CatalogoItem, error)

	GetRopa(ctx context.Context, brigadaID int) ([]models.EquipamientoRopa, error)
	CreateRopa(ctx context.Context, brigadaID int, req models.RopaRequest) error
	DeleteRopa(ctx context.Context, brigadaID int) error

	GetBotas(ctx context.Context, brigadaID int) ([]models.EquipamientoBotas, error)
	CreateBotas(ctx context.Context, brigadaID int, req models.BotasRequest) error
	DeleteBotas(ctx context.Context, brigadaID int) error

	GetGuantes(ctx context.Context, brigadaID int) ([]models.EquipamientoGuantes, error)
	CreateGuantes(ctx context.Context, brigadaID int, req models.GuantesRequest) error
	DeleteGuantes(ctx context.Context, brigadaID int) error

	GetGenerico(ctx context.Context, brigadaID int, cat models.Categoria) ([]models.EquipamientoGenerico, error)
	CreateGenerico(ctx context.Context, brigadaID int, cat models.Categoria, row models.GenericoRequest) error
	DeleteGenerico(ctx context.Context, brigadaID int, cat models.Categoria) error
}

// Client talks to the brigade REST service. Calls are passed straight through:
// no retry, no cache, no request deduplication.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ Backend = (*Client)(nil)

// NewClient creates a client for baseURL (e.g. https://host/api)
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// call executes one request and returns the unwrapped envelope data.
// requireData makes a missing data field an error.
func call[T any](ctx context.Context, c *Client, op, method, path string, body interface{}, requireData bool) (*T, error) {
	var env Envelope[T]

	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env).
		ForceContentType("application/json")
	if body != nil {
		req.SetBody(body)
	}

	c.logger.Debug("Calling brigade service",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := req.Execute(method, path)
	if err != nil {
		apiErr := &Error{Op: op, Method: method, Path: path, Err: err}
		if resp != nil {
			apiErr.StatusCode = resp.StatusCode()
		}
		return nil, apiErr
	}

	if resp.IsError() {
		return nil, &Error{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
			Err:        ErrUnsuccessful,
		}
	}

	if !env.Success {
		return nil, &Error{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
			Err:        ErrUnsuccessful,
		}
	}

	if requireData && env.Data == nil {
		return nil, &Error{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
			Err:        ErrMissingData,
		}
	}

	return env.Data, nil
}

func brigadaPath(id int) string {
	return fmt.Sprintf("/brigadas/%d", id)
}

func equipamientoPath(brigadaID int, route string) string {
	return fmt.Sprintf("/equipamiento/%d/%s", brigadaID, route)
}

// ListBrigadas fetches every brigade
func (c *Client) ListBrigadas(ctx context.Context) ([]models.Brigada, error) {
	data, err := call[[]models.Brigada](ctx, c, "ListBrigadas", http.MethodGet, "/brigadas", nil, true)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

// GetBrigada fetches one brigade
func (c *Client) GetBrigada(ctx context.Context, id int) (*models.Brigada, error) {
	return call[models.Brigada](ctx, c, "GetBrigada", http.MethodGet, brigadaPath(id), nil, true)
}

// CreateBrigada creates a brigade and returns it with its assigned id
func (c *Client) CreateBrigada(ctx context.Context, req models.BrigadaRequest) (*models.Brigada, error) {
	data, err := call[models.Brigada](ctx, c, "CreateBrigada", http.MethodPost, "/brigadas", req, true)
	if err != nil {
		return nil, err
	}
	if data.ID <= 0 {
		return nil, &Error{Op: "CreateBrigada", Method: http.MethodPost, Path: "/brigadas", Err: ErrMissingData, Message: "id"}
	}
	return data, nil
}

// UpdateBrigada replaces the editable fields of a brigade
func (c *Client) UpdateBrigada(ctx context.Context, id int, req models.BrigadaRequest) error {
	_, err := call[json.RawMessage](ctx, c, "UpdateBrigada", http.MethodPut, brigadaPath(id), req, false)
	return err
}

// DeleteBrigada removes a brigade. Its equipment is not cascaded.
func (c *Client) DeleteBrigada(ctx context.Context, id int) error {
	_, err := call[json.RawMessage](ctx, c, "DeleteBrigada", http.MethodDelete, brigadaPath(id), nil, false)
	return err
}

// GetCatalogo fetches one reference catalog
func (c *Client) GetCatalogo(ctx context.Context, catalogo models.Catalogo) ([]models.CatalogoItem, error) {
	data, err := call[[]models.CatalogoItem](ctx, c, "GetCatalogo", http.MethodGet, "/catalogos/"+string(catalogo), nil, true)
	if err != nil {
		return nil, err
	}
	return *data, nil
}
