package inventory

import "github.com/jhoicas/Planta-core/internal/domain/entity"

// Umbrales de clasificación de stock como fracción de la capacidad máxima.
type Thresholds struct {
	Critical float64 // ratio <= Critical  -> Critical
	Low      float64 // ratio <= Low       -> Low
}

// DefaultThresholds valores estándar de planta: crítico al 20%, bajo al 30%.
var DefaultThresholds = Thresholds{Critical: 0.2, Low: 0.3}

// Derive clasifica el nivel de stock (servicio de dominio, función pura).
// MaxStock <= 0 devuelve OK para evitar división por cero.
// Los límites son inclusivos por abajo: ratio == Critical es Critical,
// ratio == Low es Low.
func (t Thresholds) Derive(stock, maxStock float64) entity.InventoryStatus {
	if maxStock <= 0 {
		return entity.StatusOK
	}
	ratio := stock / maxStock
	switch {
	case ratio <= t.Critical:
		return entity.StatusCritical
	case ratio <= t.Low:
		return entity.StatusLow
	default:
		return entity.StatusOK
	}
}

// DeriveStatus clasifica con los umbrales estándar. Debe reinvocarse en toda
// mutación que afecte Stock o MaxStock: el Status almacenado es solo un cache
// de este cómputo.
func DeriveStatus(stock, maxStock float64) entity.InventoryStatus {
	return DefaultThresholds.Derive(stock, maxStock)
}
