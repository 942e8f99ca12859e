package wizard

import (
	"context"
	"fmt"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
)

// EquipmentCall is one pending equipment creation
type EquipmentCall struct {
	Label string
	Do    func(ctx context.Context, backend api.Backend, brigadaID int) error
}

// BuildEquipmentCalls lists the creations for the current form:
// clothing rows with any size, boots and gloves when a numbered size is set,
// generic rows with a type and a quantity.
func BuildEquipmentCalls(f *FormState) []EquipmentCall {
	var calls []EquipmentCall

	for i, r := range f.Ropa {
		if r.Total() == 0 {
			continue
		}
		row := r
		calls = append(calls, EquipmentCall{
			Label: fmt.Sprintf("Ropa #%d", i+1),
			Do: func(ctx context.Context, b api.Backend, id int) error {
				return b.CreateRopa(ctx, id, row)
			},
		})
	}

	if anyPositive(f.Botas.Sizes()) {
		botas := SanitizeBotas(f.Botas)
		calls = append(calls, EquipmentCall{
			Label: "Botas",
			Do: func(ctx context.Context, b api.Backend, id int) error {
				return b.CreateBotas(ctx, id, botas)
			},
		})
	}

	if anyPositive(f.Guantes.Sizes()) {
		guantes := SanitizeGuantes(f.Guantes)
		calls = append(calls, EquipmentCall{
			Label: "Guantes",
			Do: func(ctx context.Context, b api.Backend, id int) error {
				return b.CreateGuantes(ctx, id, guantes)
			},
		})
	}

	for _, cat := range models.AllCategorias {
		for i, r := range *f.Rows(cat) {
			if r.Cantidad <= 0 || r.TipoID <= 0 {
				continue
			}
			cat, row := cat, r
			calls = append(calls, EquipmentCall{
				Label: fmt.Sprintf("%s #%d", cat.Label(), i+1),
				Do: func(ctx context.Context, b api.Backend, id int) error {
					return b.CreateGenerico(ctx, id, cat, row)
				},
			})
		}
	}

	return calls
}

func anyPositive(values []int) bool {
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}
