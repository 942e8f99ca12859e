package services

import (
	"context"
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"

	"golang.org/x/sync/errgroup"
)

// Catalogos holds every reference catalog keyed by kind
type Catalogos map[models.Catalogo][]models.CatalogoItem

// Items returns the entries of a catalog
func (c Catalogos) Items(kind models.Catalogo) []models.CatalogoItem {
	return c[kind]
}

// Nombre resolves a catalog id to its name, empty when unknown
func (c Catalogos) Nombre(kind models.Catalogo, id int) string {
	for _, item := range c[kind] {
		if item.ID == id {
			return item.Nombre
		}
	}
	return ""
}

// LoadCatalogos fetches the ten catalogs concurrently; any failure fails the load
func LoadCatalogos(ctx context.Context, backend api.Backend) (Catalogos, error) {
	results := make([][]models.CatalogoItem, len(models.AllCatalogos))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range models.AllCatalogos {
		i, kind := i, kind
		g.Go(func() error {
			items, err := backend.GetCatalogo(gctx, kind)
			results[i] = items
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalogos: %w", err)
	}

	out := make(Catalogos, len(models.AllCatalogos))
	for i, kind := range models.AllCatalogos {
		out[kind] = results[i]
	}
	return out, nil
}
