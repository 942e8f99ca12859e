package pages

import (
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/services/wizard"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/partials"

	"github.com/a-h/templ"
)

// Wizard renders the three-step brigade form
func Wizard(f *wizard.FormState, catalogos services.Catalogos, errMsg string) templ.Component {
	titleKey := "wizard.title_new"
	if f.IsEditing() {
		titleKey = "wizard.title_edit"
	}
	body := components.Component(func(h *components.HTML) {
		h.Raw(`<h1>`)
		h.Text(i18n.T(h.Context(), titleKey))
		h.Raw(`</h1>`)
		h.Render(partials.WizardForm(f, catalogos, errMsg))
	})
	return titled(titleKey, body)
}
