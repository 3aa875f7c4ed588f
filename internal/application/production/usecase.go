// Package production implementa los casos de uso sobre lotes de producción:
// creación contra órdenes de compra y transiciones de etapas.
package production

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	domprod "github.com/jhoicas/Planta-core/internal/domain/production"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// UseCase casos de uso de producción.
type UseCase struct {
	batches  repository.BatchRepository
	orders   repository.PurchaseOrderRepository
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	batches repository.BatchRepository,
	orders repository.PurchaseOrderRepository,
	products repository.ProductRepository,
) *UseCase {
	return &UseCase{batches: batches, orders: orders, products: products}
}

// defaultStageTemplate secuencia de etapas cuando el producto no define
// proceso en su ficha maestra.
var defaultStageTemplate = []entity.ProductionStage{
	{Name: "Material Cut", Assignee: "Rob T."},
	{Name: "Assembly A", Assignee: "Sarah J."},
	{Name: "Assembly B", Assignee: "Unassigned"},
	{Name: "QA Check", Assignee: "Quality Team"},
	{Name: "Packaging", Assignee: "Logistics"},
}

// AvailableQty cantidad de la orden aún sin planificar: total menos lo
// entregado menos lo ya comprometido en lotes.
func (uc *UseCase) AvailableQty(poID string) (int, error) {
	po, err := uc.orders.GetByID(poID)
	if err != nil {
		return 0, err
	}
	batches, err := uc.batches.ListByPO(poID)
	if err != nil {
		return 0, err
	}
	planned := 0
	for _, b := range batches {
		planned += b.Quantity
	}
	return po.TotalQty - po.FulfilledQty - planned, nil
}

// CreateBatch planifica un lote contra una orden de compra. La cantidad debe
// ser positiva y no exceder lo disponible sin planificar. Las etapas se copian
// de la ficha maestra del producto (o de la plantilla por defecto) con IDs
// nuevos; el lote nace Planned con su entrada de bitácora de creación.
func (uc *UseCase) CreateBatch(poID string, qty int) (*entity.ProductionBatch, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	po, err := uc.orders.GetByID(poID)
	if err != nil {
		return nil, err
	}
	available, err := uc.AvailableQty(poID)
	if err != nil {
		return nil, err
	}
	if qty > available {
		return nil, fmt.Errorf("%w (disponibles: %d)", domain.ErrQtyExceedsPO, available)
	}

	now := time.Now()
	batch := &entity.ProductionBatch{
		ID:        "BATCH-" + uuid.New().String()[:8],
		POID:      po.ID,
		Customer:  po.Customer,
		Product:   po.Product,
		SKU:       po.SKU,
		Quantity:  qty,
		Status:    entity.BatchPlanned,
		Priority:  "Normal",
		Stages:    uc.stagesFor(po.SKU),
		StartDate: now,
		Logs:      []entity.BatchLog{{Time: now, Message: "Batch created", Source: "System"}},
	}
	if err := uc.batches.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// stagesFor arma la secuencia de etapas del lote desde la ficha maestra del
// producto; si no hay ficha o esta no define proceso, usa la plantilla.
func (uc *UseCase) stagesFor(sku string) []entity.ProductionStage {
	prod, err := uc.products.GetBySKU(sku)
	if err == nil && len(prod.Stages) > 0 {
		stages := make([]entity.ProductionStage, 0, len(prod.Stages))
		for _, def := range prod.Stages {
			stages = append(stages, entity.ProductionStage{
				ID:       uuid.New().String(),
				Name:     def.Name,
				Status:   entity.StagePending,
				Assignee: "Unassigned",
			})
		}
		return stages
	}
	stages := make([]entity.ProductionStage, len(defaultStageTemplate))
	for i, s := range defaultStageTemplate {
		stages[i] = s
		stages[i].ID = uuid.New().String()
		stages[i].Status = entity.StagePending
	}
	return stages
}

// AdvanceStage ejecuta la acción de avance sobre una etapa:
// pending->active (solo la etapa siguiente designada) o active->completed
// (con auto-activación de la sucesora). Recalcula el estado del lote y, en
// finalizaciones, antepone la entrada de bitácora.
func (uc *UseCase) AdvanceStage(batchID, stageID string) (*entity.ProductionBatch, error) {
	batch, err := uc.batches.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var name string
	for _, s := range batch.Stages {
		if s.ID == stageID {
			name = s.Name
		}
	}
	newStatus, err := domprod.Advance(batch.Stages, stageID, now)
	if err != nil {
		return nil, err
	}
	batch.Status = domprod.DeriveBatchStatus(batch.Status, batch.Stages)
	if newStatus == entity.StageCompleted {
		batch.Logs = append([]entity.BatchLog{{
			Time:    now,
			Message: fmt.Sprintf("Stage %q completed", name),
			Source:  "User Action",
		}}, batch.Logs...)
	}
	if err := uc.batches.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// RevertStage deshace la finalización más reciente (completed->active):
// limpia CompletedAt, la sucesora auto-activada vuelve a pending y un lote
// Completed vuelve a Active. La bitácora registra la corrección, también con
// la entrada más reciente primero.
func (uc *UseCase) RevertStage(batchID, stageID string) (*entity.ProductionBatch, error) {
	batch, err := uc.batches.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	var name string
	for _, s := range batch.Stages {
		if s.ID == stageID {
			name = s.Name
		}
	}
	if err := domprod.Revert(batch.Stages, stageID); err != nil {
		return nil, err
	}
	batch.Status = domprod.DeriveBatchStatus(batch.Status, batch.Stages)
	batch.Logs = append([]entity.BatchLog{{
		Time:    time.Now(),
		Message: fmt.Sprintf("Stage %q marked incomplete", name),
		Source:  "User Correction",
	}}, batch.Logs...)
	if err := uc.batches.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// SetStageCompletedAt sobrescribe la marca de tiempo de una etapa ya
// completada con la fecha y hora elegidas por el operador. No cambia el
// estado de la etapa, solo el instante registrado.
func (uc *UseCase) SetStageCompletedAt(batchID, stageID string, t time.Time) (*entity.ProductionBatch, error) {
	batch, err := uc.batches.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range batch.Stages {
		if batch.Stages[i].ID == stageID {
			if batch.Stages[i].Status != entity.StageCompleted {
				return nil, domain.ErrConflict
			}
			batch.Stages[i].CompletedAt = &t
			found = true
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if err := uc.batches.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Progress porcentaje de avance del lote.
func (uc *UseCase) Progress(batch *entity.ProductionBatch) int {
	return domprod.Progress(batch.Stages)
}

// List devuelve todos los lotes.
func (uc *UseCase) List() ([]entity.ProductionBatch, error) {
	return uc.batches.List()
}

// Get devuelve un lote por ID.
func (uc *UseCase) Get(batchID string) (*entity.ProductionBatch, error) {
	return uc.batches.GetByID(batchID)
}
