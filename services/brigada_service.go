package services

import (
	"context"
	"fmt"
	"sort"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
)

// RecentBrigadasLimit is the number of brigades shown on the dashboard
const RecentBrigadasLimit = 5

// DashboardStats aggregates the brigade list for the dashboard
type DashboardStats struct {
	Total           int
	Active          int
	BomberosActivos int
	RecentBrigadas  []models.Brigada
}

// FilterBrigadas keeps the brigades matching a search term, preserving order
func FilterBrigadas(brigadas []models.Brigada, term string) []models.Brigada {
	if term == "" {
		return brigadas
	}
	out := make([]models.Brigada, 0, len(brigadas))
	for i := range brigadas {
		if brigadas[i].MatchesSearch(term) {
			out = append(out, brigadas[i])
		}
	}
	return out
}

// ComputeDashboardStats counts brigades and firefighters and picks the most recent ones.
// Firefighters are summed over every brigade, active or not.
func ComputeDashboardStats(brigadas []models.Brigada) DashboardStats {
	stats := DashboardStats{Total: len(brigadas)}
	for _, b := range brigadas {
		if b.Activo {
			stats.Active++
		}
		stats.BomberosActivos += b.CantidadBomberosActivos
	}

	recent := make([]models.Brigada, len(brigadas))
	copy(recent, brigadas)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].FechaRegistro.Equal(recent[j].FechaRegistro.Time) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].FechaRegistro.After(recent[j].FechaRegistro.Time)
	})
	if len(recent) > RecentBrigadasLimit {
		recent = recent[:RecentBrigadasLimit]
	}
	stats.RecentBrigadas = recent
	return stats
}

// SearchBrigadas fetches every brigade and filters them
func SearchBrigadas(ctx context.Context, backend api.Backend, term string) ([]models.Brigada, error) {
	brigadas, err := backend.ListBrigadas(ctx)
	if err != nil {
		return nil, fmt.Errorf("search brigadas: %w", err)
	}
	return FilterBrigadas(brigadas, term), nil
}

// LoadDashboard fetches every brigade and aggregates them
func LoadDashboard(ctx context.Context, backend api.Backend) (*DashboardStats, error) {
	brigadas, err := backend.ListBrigadas(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	stats := ComputeDashboardStats(brigadas)
	return &stats, nil
}
