package repository

import "github.com/jhoicas/Planta-core/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento para ProductDefinition.
type ProductRepository interface {
	GetByID(id string) (*entity.ProductDefinition, error)
	GetBySKU(sku string) (*entity.ProductDefinition, error)
	// Save confirma una ficha de forma atómica: reemplaza por ID si existe,
	// si no la agrega al final.
	Save(product *entity.ProductDefinition) error
	List() ([]entity.ProductDefinition, error)
}
