package repository

import "github.com/jhoicas/Planta-core/internal/domain/entity"

// BatchRepository define el puerto de almacenamiento para ProductionBatch.
type BatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	GetByID(id string) (*entity.ProductionBatch, error)
	Update(batch *entity.ProductionBatch) error
	List() ([]entity.ProductionBatch, error)
	ListByPO(poID string) ([]entity.ProductionBatch, error)
}

// PurchaseOrderRepository define el puerto de lectura de órdenes de compra.
type PurchaseOrderRepository interface {
	GetByID(id string) (*entity.PurchaseOrder, error)
	List() ([]entity.PurchaseOrder, error)
}
