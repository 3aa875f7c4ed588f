package memory

import (
	"sync"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// InspectionRepo implementación en memoria de InspectionRepository.
// El historial se mantiene con la inspección más reciente primero.
type InspectionRepo struct {
	mu          sync.RWMutex
	inspections []entity.Inspection
}

// NewInspectionRepository construye el repositorio, opcionalmente sembrado
// (el seed ya viene ordenado de más reciente a más antigua).
func NewInspectionRepository(seed []entity.Inspection) *InspectionRepo {
	r := &InspectionRepo{inspections: make([]entity.Inspection, 0, len(seed))}
	for _, in := range seed {
		r.inspections = append(r.inspections, in.Clone())
	}
	return r
}

var _ repository.InspectionRepository = (*InspectionRepo)(nil)

// Create antepone la inspección al historial.
func (r *InspectionRepo) Create(inspection *entity.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inspections = append([]entity.Inspection{inspection.Clone()}, r.inspections...)
	return nil
}

// GetByID devuelve una copia de la inspección, o ErrNotFound.
func (r *InspectionRepo) GetByID(id string) (*entity.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, in := range r.inspections {
		if in.ID == id {
			out := in.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve el historial completo, más reciente primero.
func (r *InspectionRepo) List() ([]entity.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Inspection, 0, len(r.inspections))
	for _, in := range r.inspections {
		out = append(out, in.Clone())
	}
	return out, nil
}
