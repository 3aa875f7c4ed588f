package repository

import "github.com/jhoicas/Planta-core/internal/domain/entity"

// InventoryRepository define el puerto de almacenamiento para InventoryItem (DIP).
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateAll reemplaza varios ítems en una sola operación (todo o nada).
	UpdateAll(items []*entity.InventoryItem) error
	Delete(id string) error
	List() ([]entity.InventoryItem, error)
}
