package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"brigadas_admin_go/db"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/pages"
	"brigadas_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// generatePDF renders HTML through headless Chrome; tests replace it
var generatePDF = services.GeneratePDFFromHTML

// ExportInventoryHandler downloads the workbook of every brigade and its equipment
func ExportInventoryHandler(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := services.CollectInventoryReport(ctx, services.API)
	if err != nil {
		logRemoteError("reports.inventory", 0, err)
		return render(c, remoteStatus(err), pages.ErrorPage("reports.title", i18n.T(ctx, "reports.error"), "/"))
	}

	buf, err := services.BuildInventoryWorkbook(ctx, report)
	if err != nil {
		zap.L().Error("build inventory workbook", zap.Error(err))
		return render(c, http.StatusInternalServerError, pages.ErrorPage("reports.title", i18n.T(ctx, "reports.error"), "/"))
	}

	archiveExport(c, models.ReportKindInventory, nil, buf.Bytes())
	audit(c, services.AuditEvent{
		Action:       models.AuditActionExport,
		ResourceType: "Inventario",
		ResourceID:   "all",
		Description:  fmt.Sprintf("Inventario exportado: %d brigadas", len(report.Details)),
	})

	filename := fmt.Sprintf("inventario_brigadas_%s.xlsx", report.GeneratedAt.Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, services.ContentTypeXLSX, buf.Bytes())
}

// ExportBrigadaPDFHandler downloads the detail view of one brigade as PDF
func ExportBrigadaPDFHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	detail, err := services.LoadBrigadaDetail(ctx, services.API, id)
	if err != nil {
		logRemoteError("reports.pdf", id, err)
		return render(c, remoteStatus(err), pages.ErrorPage("brigades.detail.title", i18n.T(ctx, "brigades.detail.error"), "/brigadas"))
	}

	var body bytes.Buffer
	if err := partials.BrigadaDetailBody(detail).Render(ctx, &body); err != nil {
		return fmt.Errorf("render brigada %d for pdf: %w", id, err)
	}

	opts := services.DefaultPDFOptions()
	opts.ChromePath = getConfig(c).ChromePath
	pdf, err := generatePDF(ctx, body.String(), opts)
	if err != nil {
		zap.L().Error("generate brigada pdf", zap.Int("brigada_id", id), zap.Error(err))
		return render(c, http.StatusInternalServerError, pages.ErrorPage("brigades.detail.title", i18n.T(ctx, "reports.error"), fmt.Sprintf("/brigadas/%d", id)))
	}

	archiveExport(c, models.ReportKindDetailPDF, &id, pdf)
	audit(c, services.AuditEvent{
		Action:       models.AuditActionExport,
		ResourceType: "Brigada",
		ResourceID:   strconv.Itoa(id),
		ResourceName: detail.Brigada.NombreBrigada,
		Description:  fmt.Sprintf("PDF exportado: %s", detail.Brigada.NombreBrigada),
	})

	filename := fmt.Sprintf("brigada_%d_%s.pdf", id, time.Now().Format("20060102"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, services.ContentTypePDF, pdf)
}

// archiveExport keeps a copy of the export; failures only cost the archive
func archiveExport(c echo.Context, kind string, brigadaID *int, data []byte) {
	if db.DB == nil || services.Storage == nil {
		return
	}
	if _, err := services.ArchiveReport(c.Request().Context(), db.DB, services.Storage, kind, brigadaID, data); err != nil {
		zap.L().Warn("archive export", zap.String("kind", kind), zap.Error(err))
	}
}
