package pages

import (
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"
	"brigadas_admin_go/templates/partials"

	"github.com/a-h/templ"
)

// BrigadasList renders the search box and the brigade table.
// The search refreshes only the table through htmx.
func BrigadasList(brigadas []models.Brigada, term, errMsg string) templ.Component {
	body := components.Component(func(h *components.HTML) {
		ctx := h.Context()
		h.Raw(`<h1>`)
		h.Text(i18n.T(ctx, "brigades.list.title"))
		h.Raw(`</h1><input type="search" name="q" hx-get="/brigadas" hx-trigger="input changed delay:300ms, search"`)
		h.Attr("hx-target", "#"+partials.BrigadasTableID)
		h.Raw(` hx-swap="outerHTML"`)
		h.Attr("placeholder", i18n.T(ctx, "brigades.list.search_placeholder"))
		h.Attr("value", term)
		h.Raw(`>`)

		if errMsg != "" {
			h.Render(components.Alert("error", errMsg))
			return
		}
		h.Render(partials.BrigadasTable(brigadas, term))
	})
	return titled("brigades.list.title", body)
}

// BrigadaDetail renders a brigade with its inventory and its actions
func BrigadaDetail(detail *services.BrigadaDetail) templ.Component {
	body := components.Component(func(h *components.HTML) {
		ctx := h.Context()
		id := detail.Brigada.ID
		h.Raw(`<div class="actions">`)
		for _, link := range []struct{ href, key string }{
			{"/brigadas", "common.back"},
			{fmt.Sprintf("/brigadas/editar/%d", id), "brigades.detail.edit_simple"},
			{fmt.Sprintf("/brigadas/editar-completa/%d", id), "brigades.detail.edit_complete"},
			{fmt.Sprintf("/brigadas/%d/export.pdf", id), "brigades.detail.export_pdf"},
			{fmt.Sprintf("/brigadas/%d/eliminar", id), "common.delete"},
		} {
			h.Raw(`<a class="btn"`)
			h.Attr("href", link.href)
			h.Raw(`>`)
			h.Text(i18n.T(ctx, link.key))
			h.Raw(`</a>`)
		}
		h.Raw(`</div>`)
		h.Render(partials.BrigadaDetailBody(detail))
	})
	return titled("brigades.detail.title", body)
}

// ErrorPage shows a load failure with a way back
func ErrorPage(titleKey, message, backURL string) templ.Component {
	return titled(titleKey, components.ErrorPanel(message, backURL))
}

// BrigadaEditor is the single-step form for the brigade record only. id is zero when creating.
func BrigadaEditor(id int, b models.BrigadaRequest, errMsg string) templ.Component {
	titleKey := "brigades.editor.new_title"
	action := "/brigadas/nueva"
	if id > 0 {
		titleKey = "brigades.editor.edit_title"
		action = fmt.Sprintf("/brigadas/editar/%d", id)
	}

	body := components.Component(func(h *components.HTML) {
		ctx := h.Context()
		h.Raw(`<h1>`)
		h.Text(i18n.T(ctx, titleKey))
		h.Raw(`</h1>`)
		h.Render(components.Alert("error", errMsg))
		h.Raw(`<form method="post"`)
		h.Attr("action", action)
		h.Raw(`>`)
		h.Render(components.CSRFInput())
		h.Render(partials.BrigadeFields(b))
		h.Raw(`<div class="actions"><button type="submit" class="btn btn-primary">`)
		h.Text(i18n.T(ctx, "common.save"))
		h.Raw(`</button><a class="btn" href="/brigadas">`)
		h.Text(i18n.T(ctx, "common.cancel"))
		h.Raw(`</a></div></form>`)
	})
	return titled(titleKey, body)
}

// Saved shows a success message and redirects after delay
func Saved(titleKey, message string, redirect components.Redirect) templ.Component {
	return components.Component(func(h *components.HTML) {
		page := components.Page{Title: i18n.T(h.Context(), titleKey), Redirect: &redirect}
		h.Render(components.Layout(page, components.SuccessNotice(message)))
	})
}

// DeleteConfirm asks before deleting a brigade
func DeleteConfirm(b *models.Brigada, errMsg string) templ.Component {
	body := components.Component(func(h *components.HTML) {
		ctx := h.Context()
		h.Raw(`<h1>`)
		h.Text(i18n.T(ctx, "brigades.delete.title"))
		h.Raw(`</h1>`)
		h.Render(components.Alert("error", errMsg))
		h.Raw(`<p>`)
		h.Text(i18n.T(ctx, "brigades.delete.confirm", map[string]interface{}{"name": b.NombreBrigada}))
		h.Raw(`</p><form method="post"`)
		h.Attr("action", fmt.Sprintf("/brigadas/%d/eliminar", b.ID))
		h.Raw(`>`)
		h.Render(components.CSRFInput())
		h.Raw(`<div class="actions"><button type="submit" class="btn btn-primary">`)
		h.Text(i18n.T(ctx, "brigades.delete.submit"))
		h.Raw(`</button><a class="btn"`)
		h.Attr("href", fmt.Sprintf("/brigadas/%d", b.ID))
		h.Raw(`>`)
		h.Text(i18n.T(ctx, "common.cancel"))
		h.Raw(`</a></div></form>`)
	})
	return titled("brigades.delete.title", body)
}
