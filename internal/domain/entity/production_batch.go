package entity

import "time"

// BatchStatus estado global de un lote de producción.
type BatchStatus string

const (
	BatchPlanned   BatchStatus = "Planned"
	BatchActive    BatchStatus = "Active"
	BatchCompleted BatchStatus = "Completed"
	BatchOnHold    BatchStatus = "On Hold"
)

// StageStatus estado de una etapa dentro de la secuencia de un lote.
// "blocked" está reservado: la lógica de transición actual no lo usa.
type StageStatus string

const (
	StagePending   StageStatus = "pending"
	StageActive    StageStatus = "active"
	StageCompleted StageStatus = "completed"
	StageBlocked   StageStatus = "blocked"
)

// ProductionStage una etapa ordenada del proceso de fabricación de un lote.
// CompletedAt está presente si y solo si Status es StageCompleted.
type ProductionStage struct {
	ID          string
	Name        string
	Status      StageStatus
	Assignee    string
	CompletedAt *time.Time
}

// BatchLog entrada de bitácora de un lote. La lista se mantiene con la más
// reciente primero.
type BatchLog struct {
	Time    time.Time
	Message string
	Source  string
}

// ProductionBatch lote de producción planificado contra una orden de compra.
// Invariante de Stages: a lo sumo una etapa "active", y debe ser la sucesora
// inmediata de la última "completed" (o la primera si ninguna lo está); las
// etapas se completan estrictamente de izquierda a derecha, sin huecos.
type ProductionBatch struct {
	ID           string
	POID         string
	Customer     string
	Product      string
	SKU          string
	Quantity     int
	CompletedQty int
	Status       BatchStatus
	Priority     string
	Stages       []ProductionStage
	StartDate    time.Time
	Logs         []BatchLog
}

// Clone devuelve una copia profunda del lote (las etapas no se comparten
// entre lotes ni entre el repositorio y el caller).
func (b ProductionBatch) Clone() ProductionBatch {
	out := b
	out.Stages = make([]ProductionStage, len(b.Stages))
	for i, s := range b.Stages {
		out.Stages[i] = s
		if s.CompletedAt != nil {
			t := *s.CompletedAt
			out.Stages[i].CompletedAt = &t
		}
	}
	out.Logs = append([]BatchLog(nil), b.Logs...)
	return out
}
