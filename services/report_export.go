package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
	"brigadas_admin_go/services/i18n"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// exportConcurrency bounds how many brigade inventories are fetched at once
const exportConcurrency = 4

// InventoryReport is the data behind the inventory workbook
type InventoryReport struct {
	GeneratedAt time.Time
	Details     []BrigadaDetail
}

// CollectInventoryReport fetches every brigade and its inventory
func CollectInventoryReport(ctx context.Context, backend api.Backend) (*InventoryReport, error) {
	brigadas, err := backend.ListBrigadas(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect inventory report: %w", err)
	}

	details := make([]BrigadaDetail, len(brigadas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for i := range brigadas {
		i := i
		g.Go(func() error {
			inv, err := LoadInventario(gctx, backend, brigadas[i].ID)
			if err != nil {
				return err
			}
			details[i] = BrigadaDetail{Brigada: &brigadas[i], Inventario: inv}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect inventory report: %w", err)
	}

	return &InventoryReport{GeneratedAt: time.Now(), Details: details}, nil
}

// BuildInventoryWorkbook renders the report as an xlsx workbook:
// one sheet of brigades and one sheet with every equipment row
func BuildInventoryWorkbook(ctx context.Context, report *InventoryReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})

	// --- Brigades sheet ---
	sheetBrigadas := i18n.T(ctx, "reports.sheets.brigades")
	f.SetSheetName("Sheet1", sheetBrigadas)

	f.SetCellValue(sheetBrigadas, "A1", i18n.T(ctx, "reports.title"))
	f.SetCellStyle(sheetBrigadas, "A1", "A1", titleStyle)
	f.SetCellValue(sheetBrigadas, "A2", report.GeneratedAt.Format("02/01/2006 15:04"))

	brigadaHeaders := []string{
		"ID",
		i18n.T(ctx, "brigades.fields.name"),
		i18n.T(ctx, "brigades.fields.firefighters"),
		i18n.T(ctx, "brigades.fields.commander_phone"),
		i18n.T(ctx, "brigades.fields.logistics_officer"),
		i18n.T(ctx, "brigades.fields.logistics_phone"),
		i18n.T(ctx, "brigades.fields.emergency_number"),
		i18n.T(ctx, "brigades.fields.registered"),
		i18n.T(ctx, "brigades.fields.active"),
		i18n.T(ctx, "reports.headers.clothing_total"),
		i18n.T(ctx, "reports.headers.boots_total"),
		i18n.T(ctx, "reports.headers.gloves_total"),
	}
	const brigadaHeaderRow = 4
	for i, header := range brigadaHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, brigadaHeaderRow)
		f.SetCellValue(sheetBrigadas, cell, header)
	}
	f.SetCellStyle(sheetBrigadas, "A4", "L4", headerStyle)
	f.SetColWidth(sheetBrigadas, "B", "G", 22)

	yes, no := i18n.T(ctx, "common.yes"), i18n.T(ctx, "common.no")
	for i, d := range report.Details {
		b := d.Brigada
		activo := no
		if b.Activo {
			activo = yes
		}
		fecha := ""
		if !b.FechaRegistro.IsZero() {
			fecha = b.FechaRegistro.Format("02/01/2006")
		}
		values := []interface{}{
			b.ID, b.NombreBrigada, b.CantidadBomberosActivos,
			b.ContactoCelularComandante, b.EncargadoLogistica, b.ContactoCelularLogistica,
			b.NumeroEmergenciaPublico, fecha, activo,
			ropaTotal(d.Inventario), botasTotal(d.Inventario), guantesTotal(d.Inventario),
		}
		cell, _ := excelize.CoordinatesToCellName(1, brigadaHeaderRow+1+i)
		if err := f.SetSheetRow(sheetBrigadas, cell, &values); err != nil {
			return nil, fmt.Errorf("write brigade row: %w", err)
		}
	}

	// --- Equipment sheet ---
	sheetEquipo := i18n.T(ctx, "reports.sheets.equipment")
	f.NewSheet(sheetEquipo)
	equipoHeaders := []interface{}{
		i18n.T(ctx, "brigades.fields.name"),
		i18n.T(ctx, "reports.headers.category"),
		i18n.T(ctx, "reports.headers.type"),
		i18n.T(ctx, "reports.headers.quantity"),
		i18n.T(ctx, "reports.headers.cost"),
		i18n.T(ctx, "reports.headers.notes"),
	}
	if err := f.SetSheetRow(sheetEquipo, "A1", &equipoHeaders); err != nil {
		return nil, fmt.Errorf("write equipment header: %w", err)
	}
	f.SetCellStyle(sheetEquipo, "A1", "F1", headerStyle)
	f.SetColWidth(sheetEquipo, "A", "C", 24)
	f.SetColWidth(sheetEquipo, "F", "F", 40)

	row := 2
	write := func(values []interface{}) error {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		row++
		return f.SetSheetRow(sheetEquipo, cell, &values)
	}
	for _, d := range report.Details {
		name := d.Brigada.NombreBrigada
		for _, r := range d.Inventario.Ropa {
			if err := write([]interface{}{name, "Ropa", r.TipoRopaNombre, r.Total(), nil, r.Observaciones}); err != nil {
				return nil, err
			}
		}
		for _, b := range d.Inventario.Botas {
			if err := write([]interface{}{name, "Botas", b.OtraTalla, b.Total(), nil, b.Observaciones}); err != nil {
				return nil, err
			}
		}
		for _, g := range d.Inventario.Guantes {
			if err := write([]interface{}{name, "Guantes", g.OtraTalla, g.Total(), nil, g.Observaciones}); err != nil {
				return nil, err
			}
		}
		for _, cat := range models.AllCategorias {
			for _, item := range d.Inventario.Genericos[cat] {
				var monto interface{}
				if cat.HasMonto() {
					monto = item.MontoAproximado
				}
				if err := write([]interface{}{name, cat.Label(), item.TipoNombre, item.Cantidad, monto, item.Observaciones}); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

func ropaTotal(inv *models.Inventario) int {
	total := 0
	for i := range inv.Ropa {
		total += inv.Ropa[i].Total()
	}
	return total
}

func botasTotal(inv *models.Inventario) int {
	total := 0
	for i := range inv.Botas {
		total += inv.Botas[i].Total()
	}
	return total
}

func guantesTotal(inv *models.Inventario) int {
	total := 0
	for i := range inv.Guantes {
		total += inv.Guantes[i].Total()
	}
	return total
}
