package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"brigadas_admin_go/config"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/wizard"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// NewBrigadaPageHandler renders the empty single-step editor
func NewBrigadaPageHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.BrigadaEditor(0, models.BrigadaRequest{CantidadBomberosActivos: 1}, ""))
}

// EditBrigadaPageHandler renders the single-step editor pre-filled from the remote record
func EditBrigadaPageHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}

	brigada, err := services.API.GetBrigada(c.Request().Context(), id)
	if err != nil {
		logRemoteError("editor.load", id, err)
		return render(c, remoteStatus(err), pages.ErrorPage("brigades.editor.edit_title", wizard.MsgLoadFailed, "/brigadas"))
	}

	return render(c, http.StatusOK, pages.BrigadaEditor(id, brigada.ToRequest(), ""))
}

// CreateBrigadaHandler saves a new brigade record without equipment
func CreateBrigadaHandler(c echo.Context) error {
	return saveBrigada(c, 0)
}

// UpdateBrigadaHandler saves the brigade record only; equipment is untouched
func UpdateBrigadaHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	return saveBrigada(c, id)
}

func saveBrigada(c echo.Context, id int) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	f := wizard.NewFormState()
	f.Bind(wizard.StepBrigadeInfo, values, services.SanitizeText)

	savedID, msg, err := wizard.SaveSimple(c.Request().Context(), services.API, id, f.Brigada)
	if err != nil {
		var vErr *wizard.ValidationError
		if errors.As(err, &vErr) {
			return render(c, http.StatusUnprocessableEntity, pages.BrigadaEditor(id, f.Brigada, vErr.Message))
		}
		logRemoteError("editor.save", id, err)
		return render(c, http.StatusBadGateway, pages.BrigadaEditor(id, f.Brigada, wizard.MsgSaveFailed))
	}

	action, titleKey := models.AuditActionCreate, "brigades.editor.new_title"
	if id > 0 {
		action, titleKey = models.AuditActionUpdate, "brigades.editor.edit_title"
	}
	audit(c, services.AuditEvent{
		Action:       action,
		ResourceType: "Brigada",
		ResourceID:   strconv.Itoa(savedID),
		ResourceName: f.Brigada.NombreBrigada,
		Description:  fmt.Sprintf("%s: %s", msg, f.Brigada.NombreBrigada),
		NewValues:    f.Brigada,
	})

	return render(c, http.StatusOK, pages.Saved(titleKey, msg, components.Redirect{URL: "/brigadas", After: config.EditorRedirectDelay}))
}
