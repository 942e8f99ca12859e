package wizard

import (
	"math"
	"strconv"
	"strings"

	"brigadas_admin_go/models"
)

const (
	// MinQuantity and MaxQuantity bound every count typed into the forms
	MinQuantity = 0
	MaxQuantity = 999999
)

// ParseQuantity commits raw input to a count: the leading integer is kept,
// anything unparsable becomes min, and the result is clamped to [min, max].
func ParseQuantity(raw string, min, max int) int {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", ".")

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return min
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow: keep the sign
		if s[0] == '-' {
			return min
		}
		return max
	}
	return clampInt(n, min, max)
}

// ParseAmount commits raw input to a decimal amount, accepting a comma as separator
func ParseAmount(raw string, min, max float64) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FormatQuantity is the display projection of a committed count
func FormatQuantity(n int) string {
	return strconv.Itoa(n)
}

// FormatAmount is the display projection of a committed amount, comma as decimal separator
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1)
}

// ClampQuantity limits n to [MinQuantity, MaxQuantity]
func ClampQuantity(n int) int {
	return clampInt(n, MinQuantity, MaxQuantity)
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// SanitizeBotas clamps every count of the boots row
func SanitizeBotas(b models.BotasRequest) models.BotasRequest {
	b.Talla37 = ClampQuantity(b.Talla37)
	b.Talla38 = ClampQuantity(b.Talla38)
	b.Talla39 = ClampQuantity(b.Talla39)
	b.Talla40 = ClampQuantity(b.Talla40)
	b.Talla41 = ClampQuantity(b.Talla41)
	b.Talla42 = ClampQuantity(b.Talla42)
	b.Talla43 = ClampQuantity(b.Talla43)
	b.CantidadOtraTalla = ClampQuantity(b.CantidadOtraTalla)
	return b
}

// SanitizeGuantes clamps every count of the gloves row
func SanitizeGuantes(g models.GuantesRequest) models.GuantesRequest {
	g.TallaXS = ClampQuantity(g.TallaXS)
	g.TallaS = ClampQuantity(g.TallaS)
	g.TallaM = ClampQuantity(g.TallaM)
	g.TallaL = ClampQuantity(g.TallaL)
	g.TallaXL = ClampQuantity(g.TallaXL)
	g.TallaXXL = ClampQuantity(g.TallaXXL)
	g.CantidadOtraTalla = ClampQuantity(g.CantidadOtraTalla)
	return g
}
