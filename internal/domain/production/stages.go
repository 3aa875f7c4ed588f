// Package production contiene la máquina de estados de las etapas de un lote
// (servicios de dominio puros, sin repositorios ni efectos).
//
// Invariante de la secuencia: a lo sumo una etapa "active", siempre la
// sucesora inmediata de la última "completed" (o la primera etapa si ninguna
// está completada). Las etapas se completan de izquierda a derecha sin huecos.
package production

import (
	"math"
	"time"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
)

// NextPendingIndex devuelve el índice de la etapa "siguiente": la primera
// pendiente cuyo prefijo anterior está íntegramente completado (o la etapa 0
// si ninguna lo está). Devuelve -1 si no hay etapa avanzable en pending.
func NextPendingIndex(stages []entity.ProductionStage) int {
	for i, s := range stages {
		if s.Status != entity.StagePending {
			continue
		}
		if i == 0 || stages[i-1].Status == entity.StageCompleted {
			return i
		}
	}
	return -1
}

// LastCompletedIndex devuelve el índice más alto con estado "completed",
// o -1 si ninguna etapa está completada.
func LastCompletedIndex(stages []entity.ProductionStage) int {
	last := -1
	for i, s := range stages {
		if s.Status == entity.StageCompleted {
			last = i
		}
	}
	return last
}

// ActiveIndex devuelve el índice de la etapa activa, o -1 si no hay ninguna.
func ActiveIndex(stages []entity.ProductionStage) int {
	for i, s := range stages {
		if s.Status == entity.StageActive {
			return i
		}
	}
	return -1
}

// AllCompleted informa si todas las etapas están completadas.
func AllCompleted(stages []entity.ProductionStage) bool {
	for _, s := range stages {
		if s.Status != entity.StageCompleted {
			return false
		}
	}
	return len(stages) > 0
}

// Progress porcentaje de avance del lote: etapas completadas sobre el total,
// redondeado. Un lote sin etapas reporta 0.
func Progress(stages []entity.ProductionStage) int {
	if len(stages) == 0 {
		return 0
	}
	completed := 0
	for _, s := range stages {
		if s.Status == entity.StageCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(stages)) * 100))
}

// DeriveBatchStatus recalcula el estado del lote tras una transición de etapa.
// Planned pasa a Active en cuanto alguna etapa está activa; cualquier estado
// pasa a Completed cuando todas las etapas lo están. On Hold se respeta.
func DeriveBatchStatus(current entity.BatchStatus, stages []entity.ProductionStage) entity.BatchStatus {
	if AllCompleted(stages) {
		return entity.BatchCompleted
	}
	if current == entity.BatchPlanned && ActiveIndex(stages) >= 0 {
		return entity.BatchActive
	}
	if current == entity.BatchCompleted {
		// Ya no están todas completadas: el lote vuelve a estar activo.
		return entity.BatchActive
	}
	return current
}

// Advance ejecuta la acción de avance sobre la etapa indicada, mutando la
// secuencia in place:
//
//	pending  -> active     solo si es la etapa siguiente designada
//	active   -> completed  fija CompletedAt=now y activa la sucesora si existe
//
// Devuelve el nuevo estado de la etapa afectada.
func Advance(stages []entity.ProductionStage, stageID string, now time.Time) (entity.StageStatus, error) {
	idx := indexOf(stages, stageID)
	if idx < 0 {
		return "", domain.ErrNotFound
	}
	switch stages[idx].Status {
	case entity.StagePending:
		if NextPendingIndex(stages) != idx {
			return "", domain.ErrStageNotAdvanceable
		}
		stages[idx].Status = entity.StageActive
		return entity.StageActive, nil
	case entity.StageActive:
		stages[idx].Status = entity.StageCompleted
		stages[idx].CompletedAt = &now
		// Auto-cascada: no hay hueco ocioso entre etapas.
		if idx+1 < len(stages) && stages[idx+1].Status == entity.StagePending {
			stages[idx+1].Status = entity.StageActive
		}
		return entity.StageCompleted, nil
	default:
		return "", domain.ErrConflict
	}
}

// Revert deshace la última finalización (completed -> active). Solo se admite
// sobre la etapa completada de índice más alto: revertir una anterior dejaría
// huecos y rompería la contigüidad izquierda-derecha. La sucesora que se
// había auto-activado vuelve a pending.
func Revert(stages []entity.ProductionStage, stageID string) error {
	idx := indexOf(stages, stageID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if stages[idx].Status != entity.StageCompleted {
		return domain.ErrConflict
	}
	if idx != LastCompletedIndex(stages) {
		return domain.ErrStageNotRevertible
	}
	stages[idx].Status = entity.StageActive
	stages[idx].CompletedAt = nil
	if idx+1 < len(stages) && stages[idx+1].Status == entity.StageActive {
		stages[idx+1].Status = entity.StagePending
	}
	return nil
}

func indexOf(stages []entity.ProductionStage, stageID string) int {
	for i, s := range stages {
		if s.ID == stageID {
			return i
		}
	}
	return -1
}
