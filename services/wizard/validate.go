package wizard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"brigadas_admin_go/models"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNombreBrigada      = "El nombre de la brigada es obligatorio (mínimo 3 caracteres)."
	MsgCantidadBomberos   = "La cantidad de bomberos activos debe ser al menos 1."
	MsgCelularComandante  = "El celular del comandante debe contener entre 7 y 15 dígitos."
	MsgEncargadoLogistica = "El nombre del encargado de logística debe tener al menos 3 caracteres."
	MsgCelularLogistica   = "El celular de logística debe contener entre 7 y 15 dígitos."
	MsgNumeroEmergencia   = "El número de emergencia público debe tener entre 3 y 6 dígitos."
)

// step1Messages maps each BrigadaRequest field to the message of its rule
var step1Messages = map[string]string{
	"NombreBrigada":             MsgNombreBrigada,
	"CantidadBomberosActivos":   MsgCantidadBomberos,
	"ContactoCelularComandante": MsgCelularComandante,
	"EncargadoLogistica":        MsgEncargadoLogistica,
	"ContactoCelularLogistica":  MsgCelularLogistica,
	"NumeroEmergenciaPublico":   MsgNumeroEmergencia,
}

// ValidationError blocks a step transition
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// These registrations only fail on an empty tag or nil func.
	_ = v.RegisterValidation("trimmed_min", validateTrimmedMin)
	_ = v.RegisterValidation("digit_count", validateDigitCount)
	return v
}

// trimmed_min=N: at least N characters once surrounding spaces are removed
func validateTrimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

// digit_count=MIN:MAX: the number of 0-9 characters lies in [MIN, MAX]
func validateDigitCount(fl validator.FieldLevel) bool {
	lo, hi, ok := parseRange(fl.Param())
	if !ok {
		return false
	}
	n := CountDigits(fl.Field().String())
	return n >= lo && n <= hi
}

func parseRange(param string) (int, int, bool) {
	parts := strings.SplitN(param, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(parts[0])
	hi, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// CountDigits returns how many ASCII digits s contains
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

// ValidPhone reports whether an optional phone has 7 to 15 digits
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	n := CountDigits(s)
	return n >= 7 && n <= 15
}

// ValidateStep1 checks the brigade fields, first failing rule wins
func ValidateStep1(b models.BrigadaRequest) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if msg, ok := step1Messages[fieldErrs[0].StructField()]; ok {
			return &ValidationError{Step: StepBrigadeInfo, Message: msg}
		}
	}
	return fmt.Errorf("validate brigade: %w", err)
}

// ValidateStep2 checks clothing rows and the "other size" pairs of boots and gloves
func ValidateStep2(f *FormState) error {
	for i, r := range f.Ropa {
		if r.Total() <= 0 {
			return &ValidationError{
				Step:    StepPersonalEquipment,
				Message: fmt.Sprintf("En la sección Ropa de Trabajo, el elemento #%d debe tener al menos una talla con cantidad mayor a 0.", i+1),
			}
		}
	}
	if msg := otherSizeMessage("Botas", f.Botas.OtraTalla, f.Botas.CantidadOtraTalla); msg != "" {
		return &ValidationError{Step: StepPersonalEquipment, Message: msg}
	}
	if msg := otherSizeMessage("Guantes", f.Guantes.OtraTalla, f.Guantes.CantidadOtraTalla); msg != "" {
		return &ValidationError{Step: StepPersonalEquipment, Message: msg}
	}
	return nil
}

// otherSizeMessage enforces that the "other size" label and count come together
func otherSizeMessage(item, label string, count int) string {
	hasLabel := strings.TrimSpace(label) != ""
	if count > 0 && !hasLabel {
		return fmt.Sprintf(`Si indicas cantidad en "Otra talla" de %s, debes especificar el nombre de la talla.`, item)
	}
	if hasLabel && count <= 0 {
		return fmt.Sprintf(`Si especificas "Otra talla" de %s, la cantidad debe ser mayor a 0.`, item)
	}
	return ""
}

// ValidateStep3 checks every generic row, categories in table order
func ValidateStep3(f *FormState) error {
	for _, cat := range models.AllCategorias {
		for i, row := range *f.Rows(cat) {
			var problem string
			switch {
			case row.TipoID <= 0:
				problem = "debe tener un tipo seleccionado."
			case row.Cantidad <= 0:
				problem = "debe tener cantidad mayor a 0."
			case cat.HasMonto() && (math.IsNaN(row.MontoAproximado) || row.MontoAproximado < 0):
				problem = "tiene un monto inválido."
			}
			if problem != "" {
				return &ValidationError{
					Step:    StepGeneralEquipment,
					Message: fmt.Sprintf("En %s, el elemento #%d %s", cat.Label(), i+1, problem),
				}
			}
		}
	}
	return nil
}

// ValidateStep runs the predicate of one step
func ValidateStep(f *FormState, step Step) error {
	switch step {
	case StepBrigadeInfo:
		return ValidateStep1(f.Brigada)
	case StepPersonalEquipment:
		return ValidateStep2(f)
	case StepGeneralEquipment:
		return ValidateStep3(f)
	}
	return fmt.Errorf("unknown wizard step %d", step)
}

// ValidateAll runs the three steps in order
func ValidateAll(f *FormState) error {
	for _, step := range Steps {
		if err := ValidateStep(f, step); err != nil {
			return err
		}
	}
	return nil
}
