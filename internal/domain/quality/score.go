// Package quality contiene el cálculo puro del puntaje de inspección.
package quality

import (
	"math"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
)

// Scoring umbrales de resultado global sobre el puntaje 0-100.
type Scoring struct {
	PassMin        int // score >= PassMin        -> Pass
	ConditionalMin int // score >= ConditionalMin -> Conditional
}

// DefaultScoring umbrales estándar: Pass exige puntaje perfecto, Conditional
// desde 70.
var DefaultScoring = Scoring{PassMin: 100, ConditionalMin: 70}

// ComputeScore calcula el puntaje 0-100 de un checklist.
// Los ítems "na" quedan fuera de numerador y denominador: no aplicable no
// cuenta ni como aprobado ni como fallado. Los ítems "pending" y "fail"
// cuentan en el denominador pero no en el numerador, así que un checklist sin
// resolver baja el puntaje igual que uno fallado.
// Lista vacía o todo "na" devuelve 0 (nunca NaN): el contrato protege el
// formateo aguas abajo.
func ComputeScore(items []entity.InspectionItem) int {
	passed, na := 0, 0
	for _, it := range items {
		switch it.Status {
		case entity.ItemPass:
			passed++
		case entity.ItemNA:
			na++
		}
	}
	total := len(items) - na
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// DeriveStatus clasifica el puntaje según los umbrales.
func (s Scoring) DeriveStatus(score int) entity.InspectionStatus {
	switch {
	case score >= s.PassMin:
		return entity.InspectionPass
	case score >= s.ConditionalMin:
		return entity.InspectionConditional
	default:
		return entity.InspectionFail
	}
}

// Evaluate calcula puntaje y resultado global con los umbrales estándar.
func Evaluate(items []entity.InspectionItem) (int, entity.InspectionStatus) {
	score := ComputeScore(items)
	return score, DefaultScoring.DeriveStatus(score)
}
