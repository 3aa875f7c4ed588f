package memory

import (
	"sync"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// BatchRepo implementación en memoria de BatchRepository. Clona en ambos
// sentidos: las etapas y la bitácora de un lote nunca se comparten con el
// almacén.
type BatchRepo struct {
	mu      sync.RWMutex
	batches []entity.ProductionBatch
}

// NewBatchRepository construye el repositorio, opcionalmente sembrado.
func NewBatchRepository(seed []entity.ProductionBatch) *BatchRepo {
	r := &BatchRepo{batches: make([]entity.ProductionBatch, 0, len(seed))}
	for _, b := range seed {
		r.batches = append(r.batches, b.Clone())
	}
	return r
}

var _ repository.BatchRepository = (*BatchRepo)(nil)

// Create agrega un lote nuevo.
func (r *BatchRepo) Create(batch *entity.ProductionBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch.Clone())
	return nil
}

// GetByID devuelve una copia profunda del lote, o ErrNotFound.
func (r *BatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.batches {
		if b.ID == id {
			out := b.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update reemplaza el lote por ID.
func (r *BatchRepo) Update(batch *entity.ProductionBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.batches {
		if r.batches[i].ID == batch.ID {
			r.batches[i] = batch.Clone()
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todos los lotes, en orden de inserción.
func (r *BatchRepo) List() ([]entity.ProductionBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.ProductionBatch, 0, len(r.batches))
	for _, b := range r.batches {
		out = append(out, b.Clone())
	}
	return out, nil
}

// ListByPO devuelve los lotes planificados contra una orden de compra.
func (r *BatchRepo) ListByPO(poID string) ([]entity.ProductionBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.ProductionBatch
	for _, b := range r.batches {
		if b.POID == poID {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// PurchaseOrderRepo implementación en memoria (solo lectura) de
// PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	mu     sync.RWMutex
	orders []entity.PurchaseOrder
}

// NewPurchaseOrderRepository construye el repositorio sembrado.
func NewPurchaseOrderRepository(seed []entity.PurchaseOrder) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{orders: append([]entity.PurchaseOrder(nil), seed...)}
}

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// GetByID devuelve una copia de la orden, o ErrNotFound.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, po := range r.orders {
		if po.ID == id {
			out := po
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve copias de todas las órdenes.
func (r *PurchaseOrderRepo) List() ([]entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.PurchaseOrder(nil), r.orders...), nil
}
