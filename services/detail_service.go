package services

import (
	"context"
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"

	"golang.org/x/sync/errgroup"
)

// BrigadaDetail is a brigade with its whole inventory
type BrigadaDetail struct {
	Brigada    *models.Brigada
	Inventario *models.Inventario
}

// LoadBrigadaDetail fetches the brigade, then its twelve equipment lists in parallel.
// Any failure fails the whole load.
func LoadBrigadaDetail(ctx context.Context, backend api.Backend, id int) (*BrigadaDetail, error) {
	brigada, err := backend.GetBrigada(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load brigada %d: %w", id, err)
	}

	inv, err := LoadInventario(ctx, backend, id)
	if err != nil {
		return nil, err
	}

	return &BrigadaDetail{Brigada: brigada, Inventario: inv}, nil
}

// LoadInventario fetches clothing, boots, gloves and the nine generic categories concurrently
func LoadInventario(ctx context.Context, backend api.Backend, brigadaID int) (*models.Inventario, error) {
	inv := models.NewInventario()
	genericos := make([][]models.EquipamientoGenerico, len(models.AllCategorias))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := backend.GetRopa(gctx, brigadaID)
		inv.Ropa = rows
		return err
	})
	g.Go(func() error {
		rows, err := backend.GetBotas(gctx, brigadaID)
		inv.Botas = rows
		return err
	})
	g.Go(func() error {
		rows, err := backend.GetGuantes(gctx, brigadaID)
		inv.Guantes = rows
		return err
	})
	for i, cat := range models.AllCategorias {
		i, cat := i, cat
		g.Go(func() error {
			rows, err := backend.GetGenerico(gctx, brigadaID, cat)
			genericos[i] = rows
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load inventario %d: %w", brigadaID, err)
	}

	for i, cat := range models.AllCategorias {
		inv.Genericos[cat] = genericos[i]
	}
	return inv, nil
}
