package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"brigadas_admin_go/config"
	"brigadas_admin_go/db"
	"brigadas_admin_go/middleware"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/services/wizard"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WizardCookieName holds the draft id of the browser's wizard
const WizardCookieName = "brigada_wizard"

func draftStore(c echo.Context) *services.DraftStore {
	return services.NewDraftStore(db.DB, getConfig(c).DraftTTL)
}

func setDraftCookie(c echo.Context, id string) {
	cfg := getConfig(c)
	ttl := cfg.DraftTTL
	if ttl <= 0 {
		ttl = services.DefaultDraftTTL
	}
	c.SetCookie(&http.Cookie{
		Name:     WizardCookieName,
		Value:    id,
		Path:     "/brigadas",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearDraftCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     WizardCookieName,
		Value:    "",
		Path:     "/brigadas",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// renderWizard loads the catalogs and renders the current step. A catalog failure
// is shown above the form; the typed values are kept.
func renderWizard(c echo.Context, status int, f *wizard.FormState, errMsg string) error {
	ctx := c.Request().Context()
	catalogos, err := services.LoadCatalogos(ctx, services.API)
	if err != nil {
		logRemoteError("wizard.catalogos", f.BrigadaID, err)
		catalogos = services.Catalogos{}
		if errMsg == "" {
			errMsg = i18n.T(ctx, "wizard.error_catalogs")
		}
	}
	return render(c, status, pages.Wizard(f, catalogos, errMsg))
}

// startWizard stores f as the browser's draft and renders its first step
func startWizard(c echo.Context, f *wizard.FormState) error {
	store := draftStore(c)
	if cookie, err := c.Cookie(WizardCookieName); err == nil {
		_ = store.Delete(cookie.Value)
	}

	id, err := store.Create(f)
	if err != nil {
		zap.L().Error("create wizard draft", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "could not start the form")
	}
	setDraftCookie(c, id)
	return renderWizard(c, http.StatusOK, f, "")
}

// WizardStartHandler opens the complete form for a new brigade
func WizardStartHandler(c echo.Context) error {
	return startWizard(c, wizard.NewFormState())
}

// WizardEditHandler opens the complete form pre-filled with a brigade and its equipment
func WizardEditHandler(c echo.Context) error {
	id, err := brigadaID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	detail, err := services.LoadBrigadaDetail(ctx, services.API, id)
	if err != nil {
		logRemoteError("wizard.load", id, err)
		return render(c, remoteStatus(err), pages.ErrorPage("wizard.title_edit", i18n.T(ctx, "wizard.error_load"), "/brigadas"))
	}

	return startWizard(c, wizard.FromInventario(detail.Brigada, detail.Inventario))
}

// loadDraft reads the browser's draft and commits the posted fields of its current step
func loadDraft(c echo.Context) (string, *wizard.FormState, error) {
	cookie, err := c.Cookie(WizardCookieName)
	if err != nil {
		return "", nil, services.ErrDraftNotFound
	}
	f, err := draftStore(c).Load(cookie.Value)
	if err != nil {
		return "", nil, err
	}

	values, err := c.FormParams()
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Bind(f.Step, values, services.SanitizeText)
	return cookie.Value, f, nil
}

// draftFailure renders the expired page or passes the error on
func draftFailure(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	if !errors.Is(err, services.ErrDraftNotFound) {
		zap.L().Error("load wizard draft", zap.Error(err))
	}
	clearDraftCookie(c)
	return render(c, http.StatusGone,
		pages.ErrorPage("wizard.title_new", i18n.T(c.Request().Context(), "wizard.expired"), "/brigadas/completa"))
}

func saveDraft(c echo.Context, id string, f *wizard.FormState) error {
	if err := draftStore(c).Save(id, f); err != nil {
		return draftFailure(c, err)
	}
	return nil
}

func validationMessage(err error) (string, bool) {
	var vErr *wizard.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message, true
	}
	return "", false
}

// WizardNextHandler validates the current step and advances
func WizardNextHandler(c echo.Context) error {
	id, f, err := loadDraft(c)
	if err != nil {
		return draftFailure(c, err)
	}

	status, errMsg := http.StatusOK, ""
	if err := wizard.Next(f); err != nil {
		errMsg, _ = validationMessage(err)
		status = http.StatusUnprocessableEntity
	}

	if err := saveDraft(c, id, f); err != nil {
		return err
	}
	return renderWizard(c, status, f, errMsg)
}

// WizardBackHandler returns to the previous step without validating
func WizardBackHandler(c echo.Context) error {
	id, f, err := loadDraft(c)
	if err != nil {
		return draftFailure(c, err)
	}

	wizard.Back(f)
	if err := saveDraft(c, id, f); err != nil {
		return err
	}
	return renderWizard(c, http.StatusOK, f, "")
}

// WizardAddRowHandler appends an empty row to the clothing list or a generic category
func WizardAddRowHandler(c echo.Context) error {
	id, f, err := loadDraft(c)
	if err != nil {
		return draftFailure(c, err)
	}

	if !f.AddRow(c.FormValue("key")) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown equipment section")
	}
	if err := saveDraft(c, id, f); err != nil {
		return err
	}
	return renderWizard(c, http.StatusOK, f, "")
}

// WizardRemoveRowHandler drops one row; the button posts "<key>.<index>"
func WizardRemoveRowHandler(c echo.Context) error {
	id, f, err := loadDraft(c)
	if err != nil {
		return draftFailure(c, err)
	}

	key, rawIndex, found := strings.Cut(c.FormValue("row"), ".")
	index, convErr := strconv.Atoi(rawIndex)
	if !found || convErr != nil || !f.RemoveRow(key, index) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown equipment row")
	}
	if err := saveDraft(c, id, f); err != nil {
		return err
	}
	return renderWizard(c, http.StatusOK, f, "")
}

// WizardSubmitHandler persists the brigade and replaces its equipment
func WizardSubmitHandler(c echo.Context) error {
	id, f, err := loadDraft(c)
	if err != nil {
		return draftFailure(c, err)
	}
	ctx := c.Request().Context()

	res, err := wizard.NewSubmitter(services.API, zap.L()).Submit(ctx, f)
	if err != nil {
		status, errMsg := http.StatusUnprocessableEntity, ""
		var sErr *wizard.SubmitError
		var vErr *wizard.ValidationError
		switch {
		case errors.As(err, &vErr):
			f.Step = vErr.Step
			errMsg = vErr.Message
		case errors.As(err, &sErr):
			status, errMsg = http.StatusBadGateway, sErr.Message
			// The brigade exists now; a retry must update it instead of creating another
			if res != nil && res.Created {
				f.BrigadaID = res.BrigadaID
				audit(c, services.AuditEvent{
					Action:       models.AuditActionCreate,
					ResourceType: "Brigada",
					ResourceID:   strconv.Itoa(res.BrigadaID),
					ResourceName: f.Brigada.NombreBrigada,
					Description:  fmt.Sprintf("%s: %s", sErr.Message, f.Brigada.NombreBrigada),
					NewValues: map[string]interface{}{
						"brigada":         f.Brigada,
						"equipment_calls": res.EquipmentCalls,
					},
				})
				notifyNewBrigada(c, res, f)
			}
		}
		if err := saveDraft(c, id, f); err != nil {
			return err
		}
		return renderWizard(c, status, f, errMsg)
	}

	if err := draftStore(c).Delete(id); err != nil {
		zap.L().Warn("delete submitted draft", zap.String("draft_id", id), zap.Error(err))
	}
	clearDraftCookie(c)

	action := models.AuditActionUpdate
	if res.Created {
		action = models.AuditActionCreate
	}
	audit(c, services.AuditEvent{
		Action:       action,
		ResourceType: "Brigada",
		ResourceID:   strconv.Itoa(res.BrigadaID),
		ResourceName: f.Brigada.NombreBrigada,
		Description:  fmt.Sprintf("%s: %s", res.Message, f.Brigada.NombreBrigada),
		NewValues: map[string]interface{}{
			"brigada":         f.Brigada,
			"equipment_calls": res.EquipmentCalls,
			"delete_failures": res.DeleteFailures,
		},
	})

	if res.Created {
		notifyNewBrigada(c, res, f)
	}

	titleKey := "wizard.title_new"
	if !res.Created {
		titleKey = "wizard.title_edit"
	}
	return render(c, http.StatusOK, pages.Saved(titleKey, res.Message, components.Redirect{URL: "/brigadas", After: config.WizardRedirectDelay}))
}

// notifyNewBrigada e-mails NOTIFY_EMAIL in the background when it is set
func notifyNewBrigada(c echo.Context, res *wizard.Result, f *wizard.FormState) {
	cfg := getConfig(c)
	if cfg.NotifyEmail == "" {
		return
	}

	email, err := services.BuildNewBrigadaEmail(cfg.NotifyEmail, services.NewBrigadaEmailData{
		NombreBrigada:      f.Brigada.NombreBrigada,
		CantidadBomberos:   f.Brigada.CantidadBomberosActivos,
		EncargadoLogistica: f.Brigada.EncargadoLogistica,
		EquipmentCalls:     res.EquipmentCalls,
		DetailURL:          fmt.Sprintf("%s/brigadas/%d", cfg.AppURL, res.BrigadaID),
	}, middleware.GetLocale(c))
	if err != nil {
		zap.L().Error("build new brigade email", zap.Int("brigada_id", res.BrigadaID), zap.Error(err))
		return
	}
	services.SendEmailAsync(cfg, email)
}
