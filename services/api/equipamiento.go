package api

import (
	"context"
	"encoding/json"
	"net/http"

	"brigadas_admin_go/models"
)

const (
	routeRopa    = "ropa"
	routeBotas   = "botas"
	routeGuantes = "guantes"
)

func (c *Client) GetRopa(ctx context.Context, brigadaID int) ([]models.EquipamientoRopa, error) {
	data, err := call[[]models.EquipamientoRopa](ctx, c, "GetRopa", http.MethodGet, equipamientoPath(brigadaID, routeRopa), nil, true)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

func (c *Client) CreateRopa(ctx context.Context, brigadaID int, req models.RopaRequest) error {
	_, err := call[CreatedID](ctx, c, "CreateRopa", http.MethodPost, equipamientoPath(brigadaID, routeRopa), req, false)
	return err
}

// DeleteRopa removes every clothing row of the brigade
func (c *Client) DeleteRopa(ctx context.Context, brigadaID int) error {
	_, err := call[json.RawMessage](ctx, c, "DeleteRopa", http.MethodDelete, equipamientoPath(brigadaID, routeRopa), nil, false)
	return err
}

func (c *Client) GetBotas(ctx context.Context, brigadaID int) ([]models.EquipamientoBotas, error) {
	data, err := call[[]models.EquipamientoBotas](ctx, c, "GetBotas", http.MethodGet, equipamientoPath(brigadaID, routeBotas), nil, true)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

func (c *Client) CreateBotas(ctx context.Context, brigadaID int, req models.BotasRequest) error {
	_, err := call[CreatedID](ctx, c, "CreateBotas", http.MethodPost, equipamientoPath(brigadaID, routeBotas), req, false)
	return err
}

func (c *Client) DeleteBotas(ctx context.Context, brigadaID int) error {
	_, err := call[json.RawMessage](ctx, c, "DeleteBotas", http.MethodDelete, equipamientoPath(brigadaID, routeBotas), nil, false)
	return err
}

func (c *Client) GetGuantes(ctx context.Context, brigadaID int) ([]models.EquipamientoGuantes, error) {
	data, err := call[[]models.EquipamientoGuantes](ctx, c, "GetGuantes", http.MethodGet, equipamientoPath(brigadaID, routeGuantes), nil, true)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

func (c *Client) CreateGuantes(ctx context.Context, brigadaID int, req models.GuantesRequest) error {
	_, err := call[CreatedID](ctx, c, "CreateGuantes", http.MethodPost, equipamientoPath(brigadaID, routeGuantes), req, false)
	return err
}

func (c *Client) DeleteGuantes(ctx context.Context, brigadaID int) error {
	_, err := call[json.RawMessage](ctx, c, "DeleteGuantes", http.MethodDelete, equipamientoPath(brigadaID, routeGuantes), nil, false)
	return err
}

// GetGenerico fetches the rows of a generic category, resolving its
// category-specific field names
func (c *Client) GetGenerico(ctx context.Context, brigadaID int, cat models.Categoria) ([]models.EquipamientoGenerico, error) {
	op := "GetGenerico/" + cat.Key()
	path := equipamientoPath(brigadaID, cat.Route())

	data, err := call[json.RawMessage](ctx, c, op, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	rows, err := models.DecodeGenericos(cat, *data)
	if err != nil {
		return nil, &Error{Op: op, Method: http.MethodGet, Path: path, Err: err}
	}
	return rows, nil
}

func (c *Client) CreateGenerico(ctx context.Context, brigadaID int, cat models.Categoria, row models.GenericoRequest) error {
	payload := models.GenericoPayload(cat, row)
	_, err := call[CreatedID](ctx, c, "CreateGenerico/"+cat.Key(), http.MethodPost, equipamientoPath(brigadaID, cat.Route()), payload, false)
	return err
}

func (c *Client) DeleteGenerico(ctx context.Context, brigadaID int, cat models.Categoria) error {
	_, err := call[json.RawMessage](ctx, c, "DeleteGenerico/"+cat.Key(), http.MethodDelete, equipamientoPath(brigadaID, cat.Route()), nil, false)
	return err
}
