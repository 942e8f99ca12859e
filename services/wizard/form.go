package wizard

import (
	"brigadas_admin_go/models"
)

// Step is a wizard page
type Step int

const (
	StepBrigadeInfo Step = iota + 1
	StepPersonalEquipment
	StepGeneralEquipment
)

// Steps lists the pages in order
var Steps = []Step{StepBrigadeInfo, StepPersonalEquipment, StepGeneralEquipment}

func (s Step) Title() string {
	switch s {
	case StepBrigadeInfo:
		return "Información de Brigada"
	case StepPersonalEquipment:
		return "Equipamiento Personal"
	case StepGeneralEquipment:
		return "Equipamiento General"
	}
	return ""
}

func (s Step) Valid() bool {
	return s >= StepBrigadeInfo && s <= StepGeneralEquipment
}

// RopaKey is the form key of the clothing rows
const RopaKey = "ropa"

// FormState mirrors one brigade plus its whole inventory while it is edited.
// BrigadaID is zero when creating.
type FormState struct {
	Step      Step                  `json:"step"`
	BrigadaID int                   `json:"brigada_id,omitempty"`
	Brigada   models.BrigadaRequest `json:"brigada"`

	Ropa    []models.RopaRequest  `json:"ropa"`
	Botas   models.BotasRequest   `json:"botas"`
	Guantes models.GuantesRequest `json:"guantes"`

	EPP                []models.GenericoRequest `json:"epp"`
	Herramientas       []models.GenericoRequest `json:"herramientas"`
	ServiciosVehiculos []models.GenericoRequest `json:"serviciosVehiculos"`
	AlimentosBebidas   []models.GenericoRequest `json:"alimentosBebidas"`
	EquipoCampo        []models.GenericoRequest `json:"equipoCampo"`
	LimpiezaPersonal   []models.GenericoRequest `json:"limpiezaPersonal"`
	LimpiezaGeneral    []models.GenericoRequest `json:"limpiezaGeneral"`
	Medicamentos       []models.GenericoRequest `json:"medicamentos"`
	AlimentosAnimales  []models.GenericoRequest `json:"alimentosAnimales"`
}

// NewFormState returns an empty creation form on the first step
func NewFormState() *FormState {
	return &FormState{
		Step:    StepBrigadeInfo,
		Brigada: models.BrigadaRequest{CantidadBomberosActivos: 1},
	}
}

// IsEditing reports whether the form updates an existing brigade
func (f *FormState) IsEditing() bool {
	return f.BrigadaID > 0
}

// Rows returns the row slice owned by a generic category
func (f *FormState) Rows(cat models.Categoria) *[]models.GenericoRequest {
	switch cat {
	case models.CategoriaEPP:
		return &f.EPP
	case models.CategoriaHerramientas:
		return &f.Herramientas
	case models.CategoriaServiciosVehiculos:
		return &f.ServiciosVehiculos
	case models.CategoriaAlimentosBebidas:
		return &f.AlimentosBebidas
	case models.CategoriaEquipoCampo:
		return &f.EquipoCampo
	case models.CategoriaLimpiezaPersonal:
		return &f.LimpiezaPersonal
	case models.CategoriaLimpiezaGeneral:
		return &f.LimpiezaGeneral
	case models.CategoriaMedicamentos:
		return &f.Medicamentos
	case models.CategoriaAlimentosAnimales:
		return &f.AlimentosAnimales
	}
	return nil
}

// AddRow appends an empty row to the clothing list or to a generic category
func (f *FormState) AddRow(key string) bool {
	if key == RopaKey {
		f.Ropa = append(f.Ropa, models.RopaRequest{})
		return true
	}
	cat, ok := models.ParseCategoria(key)
	if !ok {
		return false
	}
	rows := f.Rows(cat)
	*rows = append(*rows, models.GenericoRequest{})
	return true
}

// RemoveRow drops row index of the clothing list or of a generic category
func (f *FormState) RemoveRow(key string, index int) bool {
	if key == RopaKey {
		if index < 0 || index >= len(f.Ropa) {
			return false
		}
		f.Ropa = append(f.Ropa[:index], f.Ropa[index+1:]...)
		return true
	}
	cat, ok := models.ParseCategoria(key)
	if !ok {
		return false
	}
	rows := f.Rows(cat)
	if index < 0 || index >= len(*rows) {
		return false
	}
	*rows = append((*rows)[:index], (*rows)[index+1:]...)
	return true
}

// FromInventario pre-fills an edit form from a brigade and its stored equipment.
// Boots and gloves are singletons: the first stored row is used.
func FromInventario(b *models.Brigada, inv *models.Inventario) *FormState {
	f := &FormState{
		Step:      StepBrigadeInfo,
		BrigadaID: b.ID,
		Brigada:   b.ToRequest(),
	}
	if inv == nil {
		return f
	}

	for _, r := range inv.Ropa {
		f.Ropa = append(f.Ropa, models.RopaRequest{
			TipoRopaID:    r.TipoRopaID,
			CantidadXS:    r.CantidadXS,
			CantidadS:     r.CantidadS,
			CantidadM:     r.CantidadM,
			CantidadL:     r.CantidadL,
			CantidadXL:    r.CantidadXL,
			Observaciones: r.Observaciones,
		})
	}

	if len(inv.Botas) > 0 {
		b := inv.Botas[0]
		f.Botas = models.BotasRequest{
			Talla37:           b.Talla37,
			Talla38:           b.Talla38,
			Talla39:           b.Talla39,
			Talla40:           b.Talla40,
			Talla41:           b.Talla41,
			Talla42:           b.Talla42,
			Talla43:           b.Talla43,
			OtraTalla:         b.OtraTalla,
			CantidadOtraTalla: b.CantidadOtraTalla,
			Observaciones:     b.Observaciones,
		}
	}

	if len(inv.Guantes) > 0 {
		g := inv.Guantes[0]
		f.Guantes = models.GuantesRequest{
			TallaXS:           g.TallaXS,
			TallaS:            g.TallaS,
			TallaM:            g.TallaM,
			TallaL:            g.TallaL,
			TallaXL:           g.TallaXL,
			TallaXXL:          g.TallaXXL,
			OtraTalla:         g.OtraTalla,
			CantidadOtraTalla: g.CantidadOtraTalla,
			Observaciones:     g.Observaciones,
		}
	}

	for _, cat := range models.AllCategorias {
		rows := f.Rows(cat)
		for _, item := range inv.Genericos[cat] {
			*rows = append(*rows, models.GenericoRequest{
				TipoID:          item.TipoID,
				Cantidad:        item.Cantidad,
				Observaciones:   item.Observaciones,
				MontoAproximado: item.MontoAproximado,
			})
		}
	}

	return f
}
