package models

import (
	"strings"
	"time"
)

// Brigada is a fire-brigade record as returned by the remote service
type Brigada struct {
	ID                        int        `json:"id"`
	NombreBrigada             string     `json:"nombre_brigada"`
	CantidadBomberosActivos   int        `json:"cantidad_bomberos_activos"`
	ContactoCelularComandante string     `json:"contacto_celular_comandante"`
	EncargadoLogistica        string     `json:"encargado_logistica"`
	ContactoCelularLogistica  string     `json:"contacto_celular_logistica"`
	NumeroEmergenciaPublico   string     `json:"numero_emergencia_publico"`
	FechaRegistro             RemoteTime `json:"fecha_registro"`
	Activo                    bool       `json:"activo"`
}

// BrigadaRequest is the create/update payload for a brigade.
// Field order is the validation order of the first wizard step.
type BrigadaRequest struct {
	NombreBrigada             string `json:"NombreBrigada" validate:"trimmed_min=3"`
	CantidadBomberosActivos   int    `json:"CantidadBomberosActivos" validate:"min=1"`
	ContactoCelularComandante string `json:"ContactoCelularComandante" validate:"omitempty,digit_count=7:15"`
	EncargadoLogistica        string `json:"EncargadoLogistica" validate:"omitempty,trimmed_min=3"`
	ContactoCelularLogistica  string `json:"ContactoCelularLogistica" validate:"omitempty,digit_count=7:15"`
	NumeroEmergenciaPublico   string `json:"NumeroEmergenciaPublico" validate:"omitempty,digit_count=3:6"`
}

// ToRequest copies the editable fields of a brigade into a request
func (b *Brigada) ToRequest() BrigadaRequest {
	return BrigadaRequest{
		NombreBrigada:             b.NombreBrigada,
		CantidadBomberosActivos:   b.CantidadBomberosActivos,
		ContactoCelularComandante: b.ContactoCelularComandante,
		EncargadoLogistica:        b.EncargadoLogistica,
		ContactoCelularLogistica:  b.ContactoCelularLogistica,
		NumeroEmergenciaPublico:   b.NumeroEmergenciaPublico,
	}
}

// MatchesSearch reports whether the brigade matches a list search term.
// Name and logistics officer are compared case-insensitively, the phone as typed.
func (b *Brigada) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.NombreBrigada), lower) ||
		strings.Contains(strings.ToLower(b.EncargadoLogistica), lower) ||
		strings.Contains(b.ContactoCelularComandante, term)
}

// RemoteTime handles the timestamp formats emitted by the brigade service
type RemoteTime struct {
	time.Time
}

var remoteTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (rt *RemoteTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)

	var lastErr error
	for _, layout := range remoteTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			rt.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (rt RemoteTime) MarshalJSON() ([]byte, error) {
	if rt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + rt.Format(time.RFC3339) + `"`), nil
}
