// Package memory implementa los puertos de repositorio sobre colecciones en
// memoria. Todo el estado vive en el proceso: se siembra al arranque y se
// pierde al terminar. Cada repositorio protege su colección con RWMutex para
// lecturas concurrentes seguras, y entrega/recibe copias para que ningún
// caller comparta slices internos con el almacén.
package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// InventoryRepo implementación en memoria de InventoryRepository.
type InventoryRepo struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
}

// NewInventoryRepository construye el repositorio, opcionalmente sembrado.
func NewInventoryRepository(seed []entity.InventoryItem) *InventoryRepo {
	return &InventoryRepo{items: append([]entity.InventoryItem(nil), seed...)}
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// Create agrega un ítem nuevo al final de la colección.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *item)
	return nil
}

// GetByID devuelve una copia del ítem, o ErrNotFound.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			out := it
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetBySKU devuelve una copia del ítem por SKU (insensible a mayúsculas),
// o ErrNotFound.
func (r *InventoryRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if strings.EqualFold(it.SKU, sku) {
			out := it
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update reemplaza el ítem por ID.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

// UpdateAll reemplaza varios ítems de una vez. Si alguno no existe no se
// aplica ninguno: el caller ya validó el conjunto completo.
func (r *InventoryRepo) UpdateAll(items []*entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := make(map[string]int, len(r.items))
	for i, it := range r.items {
		idx[it.ID] = i
	}
	for _, it := range items {
		if _, ok := idx[it.ID]; !ok {
			return domain.ErrNotFound
		}
	}
	for _, it := range items {
		r.items[idx[it.ID]] = *it
	}
	return nil
}

// Delete elimina el ítem por ID. Irreversible dentro de la sesión.
func (r *InventoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una copia de toda la colección, en orden de inserción.
func (r *InventoryRepo) List() ([]entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.InventoryItem(nil), r.items...), nil
}
