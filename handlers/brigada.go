package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/pages"
	"brigadas_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// ListBrigadasHandler renders the brigade list. With HX-Request only the table is returned.
func ListBrigadasHandler(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.TrimSpace(c.QueryParam("q"))

	brigadas, err := services.SearchBrigadas(ctx, services.API, term)
	if err != nil {
		logRemoteError("brigadas.list", 0, err)
		msg := i18n.T(ctx, "brigades.list.error")
		if isHTMXRequest(c) {
			return render(c, http.StatusBadGateway, components.Alert("error", msg))
		}
		return render(c, http.StatusBadGateway, pages.BrigadasList(nil, term, msg))
	}

	if isHTMXRequest(c) {
		return render(c, http.StatusOK, partials.BrigadasTable(brigadas, term))
	}
	return render(c, http.StatusOK, pages.BrigadasList(brigadas, term, ""))
}

// BrigadaDetailHandler renders a brigade with its twelve equipment lists
func BrigadaDetailHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	detail, err := services.LoadBrigadaDetail(ctx, services.API, id)
	if err != nil {
		logRemoteError("brigadas.detail", id, err)
		return render(c, remoteStatus(err),
			pages.ErrorPage("brigades.detail.title", i18n.T(ctx, "brigades.detail.error"), "/brigadas"))
	}

	return render(c, http.StatusOK, pages.BrigadaDetail(detail))
}

// DeleteBrigadaPageHandler asks for confirmation before deleting
func DeleteBrigadaPageHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	brigada, err := services.API.GetBrigada(ctx, id)
	if err != nil {
		logRemoteError("brigadas.delete_page", id, err)
		return render(c, remoteStatus(err),
			pages.ErrorPage("brigades.delete.title", i18n.T(ctx, "brigades.detail.error"), "/brigadas"))
	}

	return render(c, http.StatusOK, pages.DeleteConfirm(brigada, ""))
}

// DeleteBrigadaHandler deletes the brigade record. Its equipment is left to the remote service.
func DeleteBrigadaHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	// Fetched for the audit entry and to re-render the confirmation on failure
	brigada, getErr := services.API.GetBrigada(ctx, id)
	if getErr != nil {
		brigada = &models.Brigada{ID: id}
	}

	if err := services.API.DeleteBrigada(ctx, id); err != nil {
		logRemoteError("brigadas.delete", id, err)
		return render(c, http.StatusBadGateway, pages.DeleteConfirm(brigada, i18n.T(ctx, "brigades.delete.error")))
	}

	audit(c, services.AuditEvent{
		Action:       models.AuditActionDelete,
		ResourceType: "Brigada",
		ResourceID:   strconv.Itoa(id),
		ResourceName: brigada.NombreBrigada,
		Description:  fmt.Sprintf("Brigada eliminada: %s", brigada.NombreBrigada),
	})

	if isHTMXRequest(c) {
		c.Response().Header().Set("HX-Redirect", "/brigadas")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/brigadas")
}
