package repository

import "github.com/jhoicas/Planta-core/internal/domain/entity"

// InspectionRepository define el puerto de almacenamiento para Inspection.
// El historial es append-only: no hay Update ni Delete.
type InspectionRepository interface {
	// Create antepone la inspección al historial (la más reciente primero).
	Create(inspection *entity.Inspection) error
	GetByID(id string) (*entity.Inspection, error)
	List() ([]entity.Inspection, error)
}
