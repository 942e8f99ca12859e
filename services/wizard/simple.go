package wizard

import (
	"context"
	"strings"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
)

// Messages of the single-step brigade editor
const (
	MsgNombreRequerido   = "El nombre de la brigada es requerido"
	MsgBomberosMayorCero = "La cantidad de bomberos debe ser mayor a 0"
	MsgSaveFailed        = "Error al guardar la brigada"
	MsgLoadFailed        = "Error al cargar la brigada"
	MsgCreated           = "Brigada creada exitosamente"
	MsgUpdated           = "Brigada actualizada exitosamente"
)

// ValidateSimple checks the brigade record edited without equipment
func ValidateSimple(b models.BrigadaRequest) error {
	if strings.TrimSpace(b.NombreBrigada) == "" {
		return &ValidationError{Step: StepBrigadeInfo, Message: MsgNombreRequerido}
	}
	if b.CantidadBomberosActivos <= 0 {
		return &ValidationError{Step: StepBrigadeInfo, Message: MsgBomberosMayorCero}
	}
	return nil
}

// SaveSimple creates (id == 0) or updates the brigade record only.
// It returns the id of the saved brigade and the success message.
func SaveSimple(ctx context.Context, backend api.Backend, id int, b models.BrigadaRequest) (int, string, error) {
	if err := ValidateSimple(b); err != nil {
		return 0, "", err
	}
	b.NombreBrigada = strings.TrimSpace(b.NombreBrigada)

	if id > 0 {
		if err := backend.UpdateBrigada(ctx, id, b); err != nil {
			return 0, "", &SubmitError{Message: MsgSaveFailed, Err: err}
		}
		return id, MsgUpdated, nil
	}

	created, err := backend.CreateBrigada(ctx, b)
	if err != nil {
		return 0, "", &SubmitError{Message: MsgSaveFailed, Err: err}
	}
	return created.ID, MsgCreated, nil
}
