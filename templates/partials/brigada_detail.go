package partials

import (
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"

	"github.com/a-h/templ"
)

// BrigadaDetailBody renders a brigade and its whole inventory. It is shared by
// the detail page and the PDF export, so it links to nothing.
func BrigadaDetailBody(detail *services.BrigadaDetail) templ.Component {
	return components.Component(func(h *components.HTML) {
		ctx := h.Context()
		b := detail.Brigada
		inv := detail.Inventario
		t := func(key string) string { return i18n.T(ctx, key) }

		h.Raw(`<h1>`)
		h.Text(b.NombreBrigada)
		h.Raw(`</h1><section class="card"><dl>`)
		for _, row := range [][2]string{
			{t("brigades.fields.firefighters"), itoa(b.CantidadBomberosActivos)},
			{t("brigades.fields.commander_phone"), b.ContactoCelularComandante},
			{t("brigades.fields.logistics_officer"), b.EncargadoLogistica},
			{t("brigades.fields.logistics_phone"), b.ContactoCelularLogistica},
			{t("brigades.fields.emergency_number"), b.NumeroEmergenciaPublico},
			{t("brigades.fields.registered"), FormatDate(b.FechaRegistro)},
			{t("brigades.fields.active"), yesNo(ctx, b.Activo)},
		} {
			h.Raw(`<dt>`)
			h.Text(row[0])
			h.Raw(`</dt><dd>`)
			h.Text(row[1])
			h.Raw(`</dd>`)
		}
		h.Raw(`</dl></section>`)

		h.Raw(`<h2>`)
		h.Text(t("brigades.detail.clothing"))
		h.Raw(`</h2>`)
		if len(inv.Ropa) == 0 {
			noneRow(h)
		} else {
			tableHead(h, t("brigades.detail.type"), "XS", "S", "M", "L", "XL", t("brigades.detail.total"), t("brigades.detail.notes"))
			for _, r := range inv.Ropa {
				tableRow(h, r.TipoRopaNombre, itoa(r.CantidadXS), itoa(r.CantidadS), itoa(r.CantidadM),
					itoa(r.CantidadL), itoa(r.CantidadXL), itoa(r.Total()), r.Observaciones)
			}
			h.Raw(`</tbody></table>`)
		}

		h.Raw(`<h2>`)
		h.Text(t("brigades.detail.boots"))
		h.Raw(`</h2>`)
		if len(inv.Botas) == 0 {
			noneRow(h)
		} else {
			tableHead(h, "37", "38", "39", "40", "41", "42", "43", t("brigades.detail.other_size"), t("brigades.detail.total"), t("brigades.detail.notes"))
			for _, r := range inv.Botas {
				tableRow(h, itoa(r.Talla37), itoa(r.Talla38), itoa(r.Talla39), itoa(r.Talla40), itoa(r.Talla41),
					itoa(r.Talla42), itoa(r.Talla43), otherSize(r.OtraTalla, r.CantidadOtraTalla), itoa(r.Total()), r.Observaciones)
			}
			h.Raw(`</tbody></table>`)
		}

		h.Raw(`<h2>`)
		h.Text(t("brigades.detail.gloves"))
		h.Raw(`</h2>`)
		if len(inv.Guantes) == 0 {
			noneRow(h)
		} else {
			tableHead(h, "XS", "S", "M", "L", "XL", "XXL", t("brigades.detail.other_size"), t("brigades.detail.total"), t("brigades.detail.notes"))
			for _, r := range inv.Guantes {
				tableRow(h, itoa(r.TallaXS), itoa(r.TallaS), itoa(r.TallaM), itoa(r.TallaL), itoa(r.TallaXL),
					itoa(r.TallaXXL), otherSize(r.OtraTalla, r.CantidadOtraTalla), itoa(r.Total()), r.Observaciones)
			}
			h.Raw(`</tbody></table>`)
		}

		h.Raw(`<h2>`)
		h.Text(t("brigades.detail.general"))
		h.Raw(`</h2>`)
		empty := true
		for _, cat := range models.AllCategorias {
			rows := inv.Genericos[cat]
			if len(rows) == 0 {
				continue
			}
			empty = false
			h.Raw(`<h3>`)
			h.Text(cat.Label())
			h.Raw(`</h3>`)
			headers := []string{t("brigades.detail.type"), t("brigades.detail.quantity")}
			if cat.HasMonto() {
				headers = append(headers, t("brigades.detail.cost"))
			}
			tableHead(h, append(headers, t("brigades.detail.notes"))...)
			for _, r := range rows {
				cells := []string{r.TipoNombre, itoa(r.Cantidad)}
				if cat.HasMonto() {
					cells = append(cells, formatAmount(r.MontoAproximado))
				}
				tableRow(h, append(cells, r.Observaciones)...)
			}
			h.Raw(`</tbody></table>`)
		}
		if empty {
			noneRow(h)
		}
	})
}

func otherSize(label string, count int) string {
	if label == "" && count == 0 {
		return ""
	}
	return label + ": " + itoa(count)
}

func noneRow(h *components.HTML) {
	h.Raw(`<p>`)
	h.Text(i18n.T(h.Context(), "common.none"))
	h.Raw(`</p>`)
}

func tableHead(h *components.HTML, headers ...string) {
	h.Raw(`<table><thead><tr>`)
	for _, hd := range headers {
		h.Raw(`<th>`)
		h.Text(hd)
		h.Raw(`</th>`)
	}
	h.Raw(`</tr></thead><tbody>`)
}

func tableRow(h *components.HTML, cells ...string) {
	h.Raw(`<tr>`)
	for _, c := range cells {
		h.Raw(`<td>`)
		h.Text(c)
		h.Raw(`</td>`)
	}
	h.Raw(`</tr>`)
}
