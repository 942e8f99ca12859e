package partials

import (
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"

	"github.com/a-h/templ"
)

// BrigadasTableID is the element swapped by the list search
const BrigadasTableID = "brigadas-table"

// BrigadasTable renders the brigade list. term is the active search, used to pick the empty message.
func BrigadasTable(brigadas []models.Brigada, term string) templ.Component {
	return components.Component(func(h *components.HTML) {
		ctx := h.Context()
		h.Raw(`<div`)
		h.Attr("id", BrigadasTableID)
		h.Raw(`>`)
		defer h.Raw(`</div>`)

		if len(brigadas) == 0 {
			key := "brigades.list.empty"
			if term != "" {
				key = "brigades.list.no_results"
			}
			h.Raw(`<p>`)
			h.Text(i18n.T(ctx, key))
			h.Raw(`</p>`)
			return
		}

		h.Raw(`<table><thead><tr>`)
		for _, key := range []string{
			"brigades.fields.name",
			"brigades.fields.firefighters",
			"brigades.fields.commander_phone",
			"brigades.fields.logistics_officer",
			"brigades.fields.registered",
			"brigades.fields.active",
			"common.actions",
		} {
			h.Raw(`<th>`)
			h.Text(i18n.T(ctx, key))
			h.Raw(`</th>`)
		}
		h.Raw(`</tr></thead><tbody>`)

		for _, b := range brigadas {
			h.Raw(`<tr`)
			h.Attr("id", fmt.Sprintf("brigada-%d", b.ID))
			h.Raw(`><td>`)
			h.Text(b.NombreBrigada)
			h.Raw(`</td><td>`)
			h.Text(itoa(b.CantidadBomberosActivos))
			h.Raw(`</td><td>`)
			h.Text(b.ContactoCelularComandante)
			h.Raw(`</td><td>`)
			h.Text(b.EncargadoLogistica)
			h.Raw(`</td><td>`)
			h.Text(FormatDate(b.FechaRegistro))
			h.Raw(`</td><td>`)
			h.Text(yesNo(ctx, b.Activo))
			h.Raw(`</td><td>`)
			actionLink(h, fmt.Sprintf("/brigadas/%d", b.ID), i18n.T(ctx, "common.view"))
			actionLink(h, fmt.Sprintf("/brigadas/editar/%d", b.ID), i18n.T(ctx, "common.edit"))
			actionLink(h, fmt.Sprintf("/brigadas/editar-completa/%d", b.ID), i18n.T(ctx, "brigades.detail.edit_complete"))
			actionLink(h, fmt.Sprintf("/brigadas/%d/eliminar", b.ID), i18n.T(ctx, "common.delete"))
			h.Raw(`</td></tr>`)
		}
		h.Raw(`</tbody></table>`)
	})
}

func actionLink(h *components.HTML, href, label string) {
	h.Raw(`<a class="btn"`)
	h.Attr("href", href)
	h.Raw(`>`)
	h.Text(label)
	h.Raw(`</a> `)
}
