package pages

import (
	"fmt"

	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/partials"

	"github.com/a-h/templ"
)

// Dashboard renders the brigade totals, the most recent brigades and quick links
func Dashboard(vm DashboardViewModel) templ.Component {
	body := components.Component(func(h *components.HTML) {
		ctx := h.Context()
		h.Raw(`<h1>`)
		h.Text(i18n.T(ctx, "dashboard.title"))
		h.Raw(`</h1>`)

		if vm.Error != "" || vm.Stats == nil {
			h.Render(components.Alert("error", vm.Error))
		} else {
			h.Raw(`<div class="cards">`)
			for _, card := range []struct {
				key   string
				value int
			}{
				{"dashboard.total", vm.Stats.Total},
				{"dashboard.active", vm.Stats.Active},
				{"dashboard.firefighters", vm.Stats.BomberosActivos},
			} {
				h.Raw(`<div class="card"><div>`)
				h.Text(i18n.T(ctx, card.key))
				h.Raw(`</div><div class="value">`)
				h.Textf("%d", card.value)
				h.Raw(`</div></div>`)
			}
			h.Raw(`</div><h2>`)
			h.Text(i18n.T(ctx, "dashboard.recent"))
			h.Raw(`</h2>`)
			if len(vm.Stats.RecentBrigadas) == 0 {
				h.Raw(`<p>`)
				h.Text(i18n.T(ctx, "dashboard.empty"))
				h.Raw(`</p>`)
			} else {
				h.Raw(`<ul class="recent">`)
				for _, b := range vm.Stats.RecentBrigadas {
					h.Raw(`<li><a`)
					h.Attr("href", fmt.Sprintf("/brigadas/%d", b.ID))
					h.Raw(`>`)
					h.Text(b.NombreBrigada)
					h.Raw(`</a> <small>`)
					h.Text(partials.FormatDate(b.FechaRegistro))
					h.Raw(`</small></li>`)
				}
				h.Raw(`</ul>`)
			}
		}

		h.Raw(`<h2>`)
		h.Text(i18n.T(ctx, "dashboard.quick_links"))
		h.Raw(`</h2><div class="actions">`)
		for _, link := range []struct{ href, key string }{
			{"/brigadas", "nav.brigades"},
			{"/brigadas/nueva", "nav.new_brigade"},
			{"/brigadas/completa", "nav.complete_form"},
			{"/reportes/brigadas.xlsx", "nav.export_xlsx"},
		} {
			h.Raw(`<a class="btn"`)
			h.Attr("href", link.href)
			h.Raw(`>`)
			h.Text(i18n.T(ctx, link.key))
			h.Raw(`</a>`)
		}
		h.Raw(`</div><h2>`)
		h.Text(i18n.T(ctx, "dashboard.activity"))
		h.Raw(`</h2>`)
		h.Render(partials.ActivityList(vm.Activity, vm.Now))
	})

	return titled("dashboard.title", body)
}

// titled wraps body in the layout with a translated page title
func titled(titleKey string, body templ.Component) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Render(components.Layout(components.Page{Title: i18n.T(h.Context(), titleKey)}, body))
	})
}
