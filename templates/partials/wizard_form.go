package partials

import (
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/services/wizard"
	"brigadas_admin_go/templates/components"

	"github.com/a-h/templ"
)

// Wizard form actions
const (
	WizardNextURL      = "/brigadas/wizard/next"
	WizardBackURL      = "/brigadas/wizard/back"
	WizardSubmitURL    = "/brigadas/wizard/submit"
	WizardAddRowURL    = "/brigadas/wizard/rows/add"
	WizardRemoveRowURL = "/brigadas/wizard/rows/remove"
)

// WizardForm renders the current step of the brigade wizard. Every button posts
// the whole form so typed values are committed before any transition.
func WizardForm(f *wizard.FormState, catalogos services.Catalogos, errMsg string) templ.Component {
	return components.Component(func(h *components.HTML) {
		ctx := h.Context()

		h.Raw(`<ol class="steps">`)
		for _, s := range wizard.Steps {
			if s == f.Step {
				h.Raw(`<li aria-current="step"><strong>`)
				h.Text(s.Title())
				h.Raw(`</strong></li>`)
				continue
			}
			h.Raw(`<li>`)
			h.Text(s.Title())
			h.Raw(`</li>`)
		}
		h.Raw(`</ol><p>`)
		h.Text(i18n.T(ctx, "wizard.step", map[string]interface{}{"n": int(f.Step), "total": len(wizard.Steps)}))
		h.Raw(`</p>`)

		h.Render(components.Alert("error", errMsg))

		h.Raw(`<form method="post" id="wizard-form"`)
		h.Attr("action", WizardNextURL)
		h.Raw(`>`)
		h.Render(components.CSRFInput())

		switch f.Step {
		case wizard.StepBrigadeInfo:
			brigadeFields(h, f.Brigada)
		case wizard.StepPersonalEquipment:
			clothingRows(h, f, catalogos)
			bootsFields(h, f.Botas)
			glovesFields(h, f.Guantes)
		case wizard.StepGeneralEquipment:
			for _, cat := range models.AllCategorias {
				genericRows(h, cat, *f.Rows(cat), catalogos)
			}
		}

		h.Raw(`<div class="actions">`)
		if f.Step > wizard.StepBrigadeInfo {
			submitButton(h, "btn", WizardBackURL, "", "", i18n.T(ctx, "wizard.back"))
		}
		if f.Step < wizard.StepGeneralEquipment {
			submitButton(h, "btn btn-primary", WizardNextURL, "", "", i18n.T(ctx, "wizard.next"))
		} else {
			submitButton(h, "btn btn-primary", WizardSubmitURL, "", "", i18n.T(ctx, "wizard.submit"))
		}
		h.Raw(`<a class="btn" href="/brigadas">`)
		h.Text(i18n.T(ctx, "common.cancel"))
		h.Raw(`</a></div></form>`)
	})
}

// BrigadeFields renders the brigade record inputs, shared with the simple editor
func BrigadeFields(b models.BrigadaRequest) templ.Component {
	return components.Component(func(h *components.HTML) {
		brigadeFields(h, b)
	})
}

func brigadeFields(h *components.HTML, b models.BrigadaRequest) {
	ctx := h.Context()
	h.Raw(`<fieldset>`)
	textInput(h, i18n.T(ctx, "brigades.fields.name"), "NombreBrigada", b.NombreBrigada, true)
	numberInput(h, i18n.T(ctx, "brigades.fields.firefighters"), "CantidadBomberosActivos", wizard.FormatQuantity(b.CantidadBomberosActivos))
	textInput(h, i18n.T(ctx, "brigades.fields.commander_phone"), "ContactoCelularComandante", b.ContactoCelularComandante, false)
	textInput(h, i18n.T(ctx, "brigades.fields.logistics_officer"), "EncargadoLogistica", b.EncargadoLogistica, false)
	textInput(h, i18n.T(ctx, "brigades.fields.logistics_phone"), "ContactoCelularLogistica", b.ContactoCelularLogistica, false)
	textInput(h, i18n.T(ctx, "brigades.fields.emergency_number"), "NumeroEmergenciaPublico", b.NumeroEmergenciaPublico, false)
	h.Raw(`</fieldset>`)
}

func clothingRows(h *components.HTML, f *wizard.FormState, catalogos services.Catalogos) {
	ctx := h.Context()
	h.Raw(`<fieldset><legend>`)
	h.Text(i18n.T(ctx, "brigades.detail.clothing"))
	h.Raw(`</legend>`)
	for i, r := range f.Ropa {
		h.Raw(`<div class="row">`)
		catalogSelect(h, wizard.FieldName(wizard.RopaKey, i, "TipoRopaID"), catalogos.Items(models.CatalogoTiposRopa), r.TipoRopaID)
		for _, size := range []struct {
			label string
			value int
		}{{"XS", r.CantidadXS}, {"S", r.CantidadS}, {"M", r.CantidadM}, {"L", r.CantidadL}, {"XL", r.CantidadXL}} {
			numberInput(h, size.label, wizard.FieldName(wizard.RopaKey, i, "Cantidad"+size.label), wizard.FormatQuantity(size.value))
		}
		textInput(h, i18n.T(ctx, "brigades.detail.notes"), wizard.FieldName(wizard.RopaKey, i, "Observaciones"), r.Observaciones, false)
		submitButton(h, "btn", WizardRemoveRowURL, "row", fmt.Sprintf("%s.%d", wizard.RopaKey, i), i18n.T(ctx, "wizard.remove_row"))
		h.Raw(`</div>`)
	}
	submitButton(h, "btn", WizardAddRowURL, "key", wizard.RopaKey, i18n.T(ctx, "wizard.add_row"))
	h.Raw(`</fieldset>`)
}

func bootsFields(h *components.HTML, b models.BotasRequest) {
	ctx := h.Context()
	h.Raw(`<fieldset><legend>`)
	h.Text(i18n.T(ctx, "brigades.detail.boots"))
	h.Raw(`</legend>`)
	for i, v := range b.Sizes() {
		size := fmt.Sprint(37 + i)
		numberInput(h, size, "botas.Talla"+size, wizard.FormatQuantity(v))
	}
	textInput(h, i18n.T(ctx, "wizard.other_size"), "botas.OtraTalla", b.OtraTalla, false)
	numberInput(h, i18n.T(ctx, "wizard.other_size_qty"), "botas.CantidadOtraTalla", wizard.FormatQuantity(b.CantidadOtraTalla))
	textInput(h, i18n.T(ctx, "brigades.detail.notes"), "botas.Observaciones", b.Observaciones, false)
	h.Raw(`</fieldset>`)
}

func glovesFields(h *components.HTML, g models.GuantesRequest) {
	ctx := h.Context()
	h.Raw(`<fieldset><legend>`)
	h.Text(i18n.T(ctx, "brigades.detail.gloves"))
	h.Raw(`</legend>`)
	for i, v := range g.Sizes() {
		size := []string{"XS", "S", "M", "L", "XL", "XXL"}[i]
		numberInput(h, size, "guantes.Talla"+size, wizard.FormatQuantity(v))
	}
	textInput(h, i18n.T(ctx, "wizard.other_size"), "guantes.OtraTalla", g.OtraTalla, false)
	numberInput(h, i18n.T(ctx, "wizard.other_size_qty"), "guantes.CantidadOtraTalla", wizard.FormatQuantity(g.CantidadOtraTalla))
	textInput(h, i18n.T(ctx, "brigades.detail.notes"), "guantes.Observaciones", g.Observaciones, false)
	h.Raw(`</fieldset>`)
}

func genericRows(h *components.HTML, cat models.Categoria, rows []models.GenericoRequest, catalogos services.Catalogos) {
	ctx := h.Context()
	key := cat.Key()
	h.Raw(`<fieldset`)
	h.Attr("id", "cat-"+key)
	h.Raw(`><legend>`)
	h.Text(cat.Label())
	h.Raw(`</legend>`)
	for i, r := range rows {
		h.Raw(`<div class="row">`)
		catalogSelect(h, wizard.FieldName(key, i, "TipoID"), catalogos.Items(cat.Catalogo()), r.TipoID)
		numberInput(h, i18n.T(ctx, "brigades.detail.quantity"), wizard.FieldName(key, i, "Cantidad"), wizard.FormatQuantity(r.Cantidad))
		if cat.HasMonto() {
			decimalInput(h, i18n.T(ctx, "brigades.detail.cost"), wizard.FieldName(key, i, "MontoAproximado"), wizard.FormatAmount(r.MontoAproximado))
		}
		textInput(h, i18n.T(ctx, "brigades.detail.notes"), wizard.FieldName(key, i, "Observaciones"), r.Observaciones, false)
		submitButton(h, "btn", WizardRemoveRowURL, "row", fmt.Sprintf("%s.%d", key, i), i18n.T(ctx, "wizard.remove_row"))
		h.Raw(`</div>`)
	}
	submitButton(h, "btn", WizardAddRowURL, "key", key, i18n.T(ctx, "wizard.add_row"))
	h.Raw(`</fieldset>`)
}

func catalogSelect(h *components.HTML, name string, items []models.CatalogoItem, selected int) {
	h.Raw(`<label>`)
	h.Text(i18n.T(h.Context(), "brigades.detail.type"))
	h.Raw(` <select`)
	h.Attr("name", name)
	h.Raw(`><option value="0">`)
	h.Text(i18n.T(h.Context(), "wizard.select_type"))
	h.Raw(`</option>`)
	// keep an unlisted saved type so the next post does not reset it
	if selected > 0 && !hasCatalogItem(items, selected) {
		h.Raw(`<option`)
		h.Attr("value", itoa(selected))
		h.Raw(` selected>`)
		h.Text("#" + itoa(selected))
		h.Raw(`</option>`)
	}
	for _, item := range items {
		h.Raw(`<option`)
		h.Attr("value", itoa(item.ID))
		if item.ID == selected {
			h.Raw(` selected`)
		}
		h.Raw(`>`)
		h.Text(item.Nombre)
		h.Raw(`</option>`)
	}
	h.Raw(`</select></label>`)
}

func hasCatalogItem(items []models.CatalogoItem, id int) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func textInput(h *components.HTML, label, name, value string, required bool) {
	h.Raw(`<label>`)
	h.Text(label)
	h.Raw(` <input type="text"`)
	h.Attr("name", name)
	h.Attr("value", value)
	if required {
		h.Raw(` required`)
	}
	h.Raw(`></label>`)
}

// numberInput takes raw text; the server commits it as a clamped integer
func numberInput(h *components.HTML, label, name, value string) {
	h.Raw(`<label>`)
	h.Text(label)
	h.Raw(` <input type="text" inputmode="numeric"`)
	h.Attr("name", name)
	h.Attr("value", value)
	h.Raw(`></label>`)
}

func decimalInput(h *components.HTML, label, name, value string) {
	h.Raw(`<label>`)
	h.Text(label)
	h.Raw(` <input type="text" inputmode="decimal"`)
	h.Attr("name", name)
	h.Attr("value", value)
	h.Raw(`></label>`)
}

func submitButton(h *components.HTML, class, action, name, value, label string) {
	h.Raw(`<button type="submit" formnovalidate`)
	h.Attr("class", class)
	h.Attr("formaction", action)
	if name != "" {
		h.Attr("name", name)
		h.Attr("value", value)
	}
	h.Raw(`>`)
	h.Text(label)
	h.Raw(`</button>`)
}
