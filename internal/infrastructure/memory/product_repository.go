package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// ProductRepo implementación en memoria de ProductRepository. Las fichas se
// clonan en ambos sentidos: el editor de datos maestros trabaja siempre sobre
// copias y confirma con Save.
type ProductRepo struct {
	mu       sync.RWMutex
	products []entity.ProductDefinition
}

// NewProductRepository construye el repositorio, opcionalmente sembrado.
func NewProductRepository(seed []entity.ProductDefinition) *ProductRepo {
	r := &ProductRepo{products: make([]entity.ProductDefinition, 0, len(seed))}
	for _, p := range seed {
		r.products = append(r.products, p.Clone())
	}
	return r
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// GetByID devuelve una copia profunda de la ficha, o ErrNotFound.
func (r *ProductRepo) GetByID(id string) (*entity.ProductDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetBySKU devuelve una copia profunda de la ficha por SKU, o ErrNotFound.
func (r *ProductRepo) GetBySKU(sku string) (*entity.ProductDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.SKU, sku) {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save confirma la ficha de forma atómica: reemplaza por ID si existe, si no
// la agrega al final de la lista.
func (r *ProductRepo) Save(product *entity.ProductDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = product.Clone()
			return nil
		}
	}
	r.products = append(r.products, product.Clone())
	return nil
}

// List devuelve copias de todas las fichas, en orden de inserción.
func (r *ProductRepo) List() ([]entity.ProductDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.ProductDefinition, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}
