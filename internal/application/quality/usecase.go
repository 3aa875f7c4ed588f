// Package quality implementa los casos de uso de control de calidad:
// borradores de inspección sobre la plantilla del producto, puntaje en vivo,
// envío al historial append-only y reporte PDF.
package quality

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	domquality "github.com/jhoicas/Planta-core/internal/domain/quality"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// ReportGenerator puerto de generación del reporte de inspección.
type ReportGenerator interface {
	GenerateInspectionPDF(inspection *entity.Inspection, plantName string) ([]byte, error)
}

// UseCase casos de uso de calidad.
type UseCase struct {
	inspections repository.InspectionRepository
	batches     repository.BatchRepository
	products    repository.ProductRepository
	scoring     domquality.Scoring
	reports     ReportGenerator
	plantName   string
}

// NewUseCase construye el caso de uso. reports puede ser nil si no se
// necesita exportación PDF.
func NewUseCase(
	inspections repository.InspectionRepository,
	batches repository.BatchRepository,
	products repository.ProductRepository,
	scoring domquality.Scoring,
	reports ReportGenerator,
	plantName string,
) *UseCase {
	return &UseCase{
		inspections: inspections,
		batches:     batches,
		products:    products,
		scoring:     scoring,
		reports:     reports,
		plantName:   plantName,
	}
}

// defaultChecklist plantilla mínima cuando el producto no define checklist.
var defaultChecklist = []entity.InspectionItem{
	{Label: "General visual inspection", Category: "Visual"},
	{Label: "Packaging integrity check", Category: "Packaging"},
}

// StartInspection abre un borrador de inspección para un lote. El checklist
// se copia de la plantilla del producto con IDs nuevos y estado pending:
// la inspección es dueña de sus copias, editar la plantilla después no la
// afecta. El borrador no se persiste hasta Submit.
func (uc *UseCase) StartInspection(batchID, inspector string) (*entity.Inspection, error) {
	batch, err := uc.batches.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	items := uc.checklistFor(batch.SKU)
	return &entity.Inspection{
		ID:        "INS-" + uuid.New().String()[:8],
		BatchID:   batch.ID,
		Product:   batch.Product,
		SKU:       batch.SKU,
		Inspector: inspector,
		Date:      time.Now(),
		Status:    entity.InspectionPass,
		Score:     domquality.ComputeScore(items),
		Items:     items,
	}, nil
}

func (uc *UseCase) checklistFor(sku string) []entity.InspectionItem {
	template := defaultChecklist
	if prod, err := uc.products.GetBySKU(sku); err == nil && len(prod.Checklist) > 0 {
		template = make([]entity.InspectionItem, 0, len(prod.Checklist))
		for _, c := range prod.Checklist {
			template = append(template, entity.InspectionItem{Label: c.Label, Category: c.Category})
		}
	}
	items := make([]entity.InspectionItem, len(template))
	for i, it := range template {
		items[i] = it
		items[i].ID = uuid.New().String()
		items[i].Status = entity.ItemPending
	}
	return items
}

// SetItemStatus marca un criterio del borrador y recalcula el puntaje en vivo.
func (uc *UseCase) SetItemStatus(draft *entity.Inspection, itemID string, status entity.ItemStatus) error {
	switch status {
	case entity.ItemPass, entity.ItemFail, entity.ItemNA, entity.ItemPending:
	default:
		return domain.ErrInvalidInput
	}
	for i := range draft.Items {
		if draft.Items[i].ID == itemID {
			draft.Items[i].Status = status
			draft.Score = domquality.ComputeScore(draft.Items)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetItemNote registra la observación de un criterio del borrador.
func (uc *UseCase) SetItemNote(draft *entity.Inspection, itemID, note string) error {
	for i := range draft.Items {
		if draft.Items[i].ID == itemID {
			draft.Items[i].Notes = note
			return nil
		}
	}
	return domain.ErrNotFound
}

// Submit congela puntaje y resultado del borrador y lo antepone al historial.
// Los criterios pending cuentan en el denominador: enviar sin resolver baja
// el puntaje. Una vez enviada, la inspección no se edita.
func (uc *UseCase) Submit(draft *entity.Inspection) (*entity.Inspection, error) {
	if draft.BatchID == "" {
		return nil, domain.ErrInvalidInput
	}
	draft.Score = domquality.ComputeScore(draft.Items)
	draft.Status = uc.scoring.DeriveStatus(draft.Score)
	if draft.Date.IsZero() {
		draft.Date = time.Now()
	}
	if err := uc.inspections.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// List devuelve el historial (más reciente primero), filtrado por resultado
// si status no es vacío.
func (uc *UseCase) List(status entity.InspectionStatus) ([]entity.Inspection, error) {
	all, err := uc.inspections.List()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := make([]entity.Inspection, 0, len(all))
	for _, in := range all {
		if in.Status == status {
			out = append(out, in)
		}
	}
	return out, nil
}

// Get devuelve una inspección por ID.
func (uc *UseCase) Get(id string) (*entity.Inspection, error) {
	return uc.inspections.GetByID(id)
}

// CategoryGroup criterios de una misma categoría, en orden de aparición.
type CategoryGroup struct {
	Category string
	Items    []entity.InspectionItem
}

// GroupByCategory agrupa los criterios por categoría preservando el orden de
// primera aparición de cada una.
func GroupByCategory(items []entity.InspectionItem) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Report genera el PDF del reporte de una inspección enviada.
func (uc *UseCase) Report(inspectionID string) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.ErrConflict
	}
	inspection, err := uc.inspections.GetByID(inspectionID)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateInspectionPDF(inspection, uc.plantName)
}
