package wizard

import (
	"fmt"
	"net/url"
	"strings"

	"brigadas_admin_go/models"
)

// TextFilter cleans free text (notes, labels) before it is stored
type TextFilter func(string) string

// FieldName is the posted name of a row field, e.g. "ropa.0.CantidadXS"
func FieldName(key string, index int, field string) string {
	return fmt.Sprintf("%s.%d.%s", key, index, field)
}

// Bind commits the posted fields of one step into the form. Counts and amounts
// pass through ParseQuantity/ParseAmount so the form only ever holds committed numbers.
func (f *FormState) Bind(step Step, values url.Values, clean TextFilter) {
	if clean == nil {
		clean = strings.TrimSpace
	}

	switch step {
	case StepBrigadeInfo:
		f.bindBrigada(values, clean)
	case StepPersonalEquipment:
		f.bindPersonal(values, clean)
	case StepGeneralEquipment:
		f.bindGeneral(values, clean)
	}
}

func qty(values url.Values, name string) int {
	return ParseQuantity(values.Get(name), MinQuantity, MaxQuantity)
}

func (f *FormState) bindBrigada(values url.Values, clean TextFilter) {
	f.Brigada = models.BrigadaRequest{
		NombreBrigada:             clean(values.Get("NombreBrigada")),
		CantidadBomberosActivos:   qty(values, "CantidadBomberosActivos"),
		ContactoCelularComandante: strings.TrimSpace(values.Get("ContactoCelularComandante")),
		EncargadoLogistica:        clean(values.Get("EncargadoLogistica")),
		ContactoCelularLogistica:  strings.TrimSpace(values.Get("ContactoCelularLogistica")),
		NumeroEmergenciaPublico:   strings.TrimSpace(values.Get("NumeroEmergenciaPublico")),
	}
}

func (f *FormState) bindPersonal(values url.Values, clean TextFilter) {
	for i := range f.Ropa {
		f.Ropa[i] = models.RopaRequest{
			TipoRopaID:    qty(values, FieldName(RopaKey, i, "TipoRopaID")),
			CantidadXS:    qty(values, FieldName(RopaKey, i, "CantidadXS")),
			CantidadS:     qty(values, FieldName(RopaKey, i, "CantidadS")),
			CantidadM:     qty(values, FieldName(RopaKey, i, "CantidadM")),
			CantidadL:     qty(values, FieldName(RopaKey, i, "CantidadL")),
			CantidadXL:    qty(values, FieldName(RopaKey, i, "CantidadXL")),
			Observaciones: clean(values.Get(FieldName(RopaKey, i, "Observaciones"))),
		}
	}

	f.Botas = models.BotasRequest{
		Talla37:           qty(values, "botas.Talla37"),
		Talla38:           qty(values, "botas.Talla38"),
		Talla39:           qty(values, "botas.Talla39"),
		Talla40:           qty(values, "botas.Talla40"),
		Talla41:           qty(values, "botas.Talla41"),
		Talla42:           qty(values, "botas.Talla42"),
		Talla43:           qty(values, "botas.Talla43"),
		OtraTalla:         clean(values.Get("botas.OtraTalla")),
		CantidadOtraTalla: qty(values, "botas.CantidadOtraTalla"),
		Observaciones:     clean(values.Get("botas.Observaciones")),
	}

	f.Guantes = models.GuantesRequest{
		TallaXS:           qty(values, "guantes.TallaXS"),
		TallaS:            qty(values, "guantes.TallaS"),
		TallaM:            qty(values, "guantes.TallaM"),
		TallaL:            qty(values, "guantes.TallaL"),
		TallaXL:           qty(values, "guantes.TallaXL"),
		TallaXXL:          qty(values, "guantes.TallaXXL"),
		OtraTalla:         clean(values.Get("guantes.OtraTalla")),
		CantidadOtraTalla: qty(values, "guantes.CantidadOtraTalla"),
		Observaciones:     clean(values.Get("guantes.Observaciones")),
	}
}

func (f *FormState) bindGeneral(values url.Values, clean TextFilter) {
	for _, cat := range models.AllCategorias {
		rows := *f.Rows(cat)
		key := cat.Key()
		for i := range rows {
			row := models.GenericoRequest{
				TipoID:        qty(values, FieldName(key, i, "TipoID")),
				Cantidad:      qty(values, FieldName(key, i, "Cantidad")),
				Observaciones: clean(values.Get(FieldName(key, i, "Observaciones"))),
			}
			if cat.HasMonto() {
				row.MontoAproximado = ParseAmount(values.Get(FieldName(key, i, "MontoAproximado")), 0, MaxQuantity)
			}
			rows[i] = row
		}
	}
}
