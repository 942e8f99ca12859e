package models

import (
	"encoding/json"
	"fmt"
)

// CatalogoItem is reference data used to populate selection choices
type CatalogoItem struct {
	ID            int        `json:"id"`
	Nombre        string     `json:"nombre"`
	Descripcion   string     `json:"descripcion"`
	Activo        bool       `json:"activo"`
	FechaCreacion RemoteTime `json:"fecha_creacion"`
}

// EquipamientoRopa is a stored clothing row
type EquipamientoRopa struct {
	ID             int    `json:"id"`
	BrigadaID      int    `json:"brigada_id"`
	TipoRopaID     int    `json:"tipo_ropa_id"`
	TipoRopaNombre string `json:"tipo_ropa_nombre"`
	CantidadXS     int    `json:"cantidad_xs"`
	CantidadS      int    `json:"cantidad_s"`
	CantidadM      int    `json:"cantidad_m"`
	CantidadL      int    `json:"cantidad_l"`
	CantidadXL     int    `json:"cantidad_xl"`
	Observaciones  string `json:"observaciones"`
}

// Total is the number of garments across every size
func (r *EquipamientoRopa) Total() int {
	return r.CantidadXS + r.CantidadS + r.CantidadM + r.CantidadL + r.CantidadXL
}

// EquipamientoBotas is the stored boots row of a brigade
type EquipamientoBotas struct {
	ID                int    `json:"id"`
	BrigadaID         int    `json:"brigada_id"`
	Talla37           int    `json:"talla_37"`
	Talla38           int    `json:"talla_38"`
	Talla39           int    `json:"talla_39"`
	Talla40           int    `json:"talla_40"`
	Talla41           int    `json:"talla_41"`
	Talla42           int    `json:"talla_42"`
	Talla43           int    `json:"talla_43"`
	OtraTalla         string `json:"otra_talla"`
	CantidadOtraTalla int    `json:"cantidad_otra_talla"`
	Observaciones     string `json:"observaciones"`
}

// Total includes the "other size" count
func (b *EquipamientoBotas) Total() int {
	return b.Talla37 + b.Talla38 + b.Talla39 + b.Talla40 + b.Talla41 + b.Talla42 + b.Talla43 + b.CantidadOtraTalla
}

// EquipamientoGuantes is the stored gloves row of a brigade
type EquipamientoGuantes struct {
	ID                int    `json:"id"`
	BrigadaID         int    `json:"brigada_id"`
	TallaXS           int    `json:"talla_xs"`
	TallaS            int    `json:"talla_s"`
	TallaM            int    `json:"talla_m"`
	TallaL            int    `json:"talla_l"`
	TallaXL           int    `json:"talla_xl"`
	TallaXXL          int    `json:"talla_xxl"`
	OtraTalla         string `json:"otra_talla"`
	CantidadOtraTalla int    `json:"cantidad_otra_talla"`
	Observaciones     string `json:"observaciones"`
}

// Total includes the "other size" count
func (g *EquipamientoGuantes) Total() int {
	return g.TallaXS + g.TallaS + g.TallaM + g.TallaL + g.TallaXL + g.TallaXXL + g.CantidadOtraTalla
}

// EquipamientoGenerico is a stored row of one of the nine generic categories.
// The type reference and name arrive under category-specific field names.
type EquipamientoGenerico struct {
	ID              int
	BrigadaID       int
	Categoria       Categoria
	TipoID          int
	TipoNombre      string
	Cantidad        int
	Observaciones   string
	MontoAproximado float64
}

// DecodeGenericos decodes the data array of a generic category response
func DecodeGenericos(cat Categoria, data json.RawMessage) ([]EquipamientoGenerico, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", cat.Key(), err)
	}

	items := make([]EquipamientoGenerico, 0, len(rows))
	for _, row := range rows {
		item := EquipamientoGenerico{Categoria: cat}
		fields := []struct {
			name string
			dst  interface{}
		}{
			{"id", &item.ID},
			{"brigada_id", &item.BrigadaID},
			{cat.ResponseIDField(), &item.TipoID},
			{cat.ResponseNameField(), &item.TipoNombre},
			{"cantidad", &item.Cantidad},
			{"observaciones", &item.Observaciones},
		}
		if cat.HasMonto() {
			fields = append(fields, struct {
				name string
				dst  interface{}
			}{"monto_aproximado", &item.MontoAproximado})
		}
		for _, f := range fields {
			raw, ok := row[f.name]
			if !ok || string(raw) == "null" {
				continue
			}
			if err := json.Unmarshal(raw, f.dst); err != nil {
				return nil, fmt.Errorf("decode %s.%s: %w", cat.Key(), f.name, err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// RopaRequest is the create payload of a clothing row
type RopaRequest struct {
	TipoRopaID    int    `json:"TipoRopaID"`
	CantidadXS    int    `json:"CantidadXS"`
	CantidadS     int    `json:"CantidadS"`
	CantidadM     int    `json:"CantidadM"`
	CantidadL     int    `json:"CantidadL"`
	CantidadXL    int    `json:"CantidadXL"`
	Observaciones string `json:"Observaciones"`
}

// Total is the number of garments across every size
func (r *RopaRequest) Total() int {
	return r.CantidadXS + r.CantidadS + r.CantidadM + r.CantidadL + r.CantidadXL
}

// BotasRequest is the create payload of the boots row
type BotasRequest struct {
	Talla37           int    `json:"Talla37"`
	Talla38           int    `json:"Talla38"`
	Talla39           int    `json:"Talla39"`
	Talla40           int    `json:"Talla40"`
	Talla41           int    `json:"Talla41"`
	Talla42           int    `json:"Talla42"`
	Talla43           int    `json:"Talla43"`
	OtraTalla         string `json:"OtraTalla"`
	CantidadOtraTalla int    `json:"CantidadOtraTalla"`
	Observaciones     string `json:"Observaciones"`
}

// Sizes returns the numbered size counts 37..43
func (b *BotasRequest) Sizes() []int {
	return []int{b.Talla37, b.Talla38, b.Talla39, b.Talla40, b.Talla41, b.Talla42, b.Talla43}
}

// GuantesRequest is the create payload of the gloves row
type GuantesRequest struct {
	TallaXS           int    `json:"TallaXS"`
	TallaS            int    `json:"TallaS"`
	TallaM            int    `json:"TallaM"`
	TallaL            int    `json:"TallaL"`
	TallaXL           int    `json:"TallaXL"`
	TallaXXL          int    `json:"TallaXXL"`
	OtraTalla         string `json:"OtraTalla"`
	CantidadOtraTalla int    `json:"CantidadOtraTalla"`
	Observaciones     string `json:"Observaciones"`
}

// Sizes returns the lettered size counts XS..XXL
func (g *GuantesRequest) Sizes() []int {
	return []int{g.TallaXS, g.TallaS, g.TallaM, g.TallaL, g.TallaXL, g.TallaXXL}
}

// GenericoRequest is a row of one generic category in the wizard and in create calls
type GenericoRequest struct {
	TipoID          int     `json:"tipo_id"`
	Cantidad        int     `json:"cantidad"`
	Observaciones   string  `json:"observaciones"`
	MontoAproximado float64 `json:"monto_aproximado"`
}

// GenericoPayload builds the create body for a category, naming the type field
// the way the backend route expects it
func GenericoPayload(cat Categoria, row GenericoRequest) map[string]interface{} {
	payload := map[string]interface{}{
		cat.RequestIDField(): row.TipoID,
		"Cantidad":           row.Cantidad,
		"Observaciones":      row.Observaciones,
	}
	if cat.HasMonto() {
		payload["MontoAproximado"] = row.MontoAproximado
	}
	return payload
}

// Inventario is the full equipment set of one brigade
type Inventario struct {
	Ropa      []EquipamientoRopa
	Botas     []EquipamientoBotas
	Guantes   []EquipamientoGuantes
	Genericos map[Categoria][]EquipamientoGenerico
}

// NewInventario returns an inventory with an entry for every generic category
func NewInventario() *Inventario {
	inv := &Inventario{Genericos: make(map[Categoria][]EquipamientoGenerico, len(AllCategorias))}
	for _, c := range AllCategorias {
		inv.Genericos[c] = nil
	}
	return inv
}
