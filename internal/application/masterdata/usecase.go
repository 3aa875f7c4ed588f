// Package masterdata implementa el editor de fichas maestras de productos.
// Las ediciones se hacen sobre una copia profunda (sesión) y se confirman de
// forma atómica con Save; descartar es simplemente abandonar la copia. Es la
// única garantía transaccional del sistema.
package masterdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	dommaster "github.com/jhoicas/Planta-core/internal/domain/masterdata"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// UseCase casos de uso de datos maestros.
type UseCase struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, inventory repository.InventoryRepository) *UseCase {
	return &UseCase{products: products, inventory: inventory}
}

// List devuelve todas las fichas confirmadas.
func (uc *UseCase) List() ([]entity.ProductDefinition, error) {
	return uc.products.List()
}

// Get devuelve una ficha por ID.
func (uc *UseCase) Get(id string) (*entity.ProductDefinition, error) {
	return uc.products.GetByID(id)
}

// BeginEdit abre una sesión de edición: una copia profunda de la ficha.
// Las mutaciones sobre la sesión no tocan la lista confirmada hasta Save.
func (uc *UseCase) BeginEdit(productID string) (*entity.ProductDefinition, error) {
	return uc.products.GetByID(productID) // el repositorio ya entrega un clon
}

// BeginCreate abre una sesión para una ficha nueva.
func (uc *UseCase) BeginCreate() *entity.ProductDefinition {
	return &entity.ProductDefinition{
		ID:           "prod-" + uuid.New().String()[:8],
		SKU:          "NEW-PROD",
		Name:         "New Product",
		Version:      "1.0",
		LastModified: time.Now(),
	}
}

// Save confirma la sesión de forma atómica: reemplaza por ID si la ficha
// existe, si no la agrega. El SKU debe ser único entre fichas.
func (uc *UseCase) Save(session *entity.ProductDefinition) error {
	if strings.TrimSpace(session.SKU) == "" || strings.TrimSpace(session.Name) == "" {
		return fmt.Errorf("%w: SKU y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if other, _ := uc.products.GetBySKU(session.SKU); other != nil && other.ID != session.ID {
		return domain.ErrDuplicateSKU
	}
	session.LastModified = time.Now()
	return uc.products.Save(session)
}

// ── BOM ───────────────────────────────────────────────────────────────────────

// AddBOMItem agrega a la sesión una línea de BOM apuntando al primer ítem de
// inventario aún no usado en ella, cacheando nombre y unidad para display.
func (uc *UseCase) AddBOMItem(session *entity.ProductDefinition) (*entity.BOMItemDefinition, error) {
	items, err := uc.inventory.List()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	used := make(map[string]struct{}, len(session.BOM))
	for _, b := range session.BOM {
		used[b.InventoryItemID] = struct{}{}
	}
	pick := items[0]
	for _, it := range items {
		if _, ok := used[it.ID]; !ok {
			pick = it
			break
		}
	}
	line := entity.BOMItemDefinition{
		ID:                uuid.New().String(),
		InventoryItemID:   pick.ID,
		InventoryItemName: pick.Name,
		Quantity:          1,
		Unit:              pick.Unit,
	}
	session.BOM = append(session.BOM, line)
	return &session.BOM[len(session.BOM)-1], nil
}

// SetBOMItemSource cambia el material de una línea, resolviendo de nuevo el
// nombre y la unidad cacheados.
func (uc *UseCase) SetBOMItemSource(session *entity.ProductDefinition, bomID, inventoryItemID string) error {
	item, err := uc.inventory.GetByID(inventoryItemID)
	if err != nil {
		return err
	}
	for i := range session.BOM {
		if session.BOM[i].ID == bomID {
			session.BOM[i].InventoryItemID = item.ID
			session.BOM[i].InventoryItemName = item.Name
			session.BOM[i].Unit = item.Unit
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetBOMItemQuantity fija la cantidad de una línea de BOM.
func SetBOMItemQuantity(session *entity.ProductDefinition, bomID string, qty float64) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	for i := range session.BOM {
		if session.BOM[i].ID == bomID {
			session.BOM[i].Quantity = qty
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveBOMItem quita una línea de BOM de la sesión.
func RemoveBOMItem(session *entity.ProductDefinition, bomID string) error {
	for i := range session.BOM {
		if session.BOM[i].ID == bomID {
			session.BOM = append(session.BOM[:i], session.BOM[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Proceso ───────────────────────────────────────────────────────────────────

// AddStage agrega una etapa de proceso al final de la secuencia.
func AddStage(session *entity.ProductDefinition, name string) *entity.ProcessStageDefinition {
	session.Stages = append(session.Stages, entity.ProcessStageDefinition{
		ID:    uuid.New().String(),
		Name:  name,
		Order: len(session.Stages) + 1,
	})
	return &session.Stages[len(session.Stages)-1]
}

// RemoveStage quita una etapa de la sesión.
func RemoveStage(session *entity.ProductDefinition, stageID string) error {
	for i := range session.Stages {
		if session.Stages[i].ID == stageID {
			session.Stages = append(session.Stages[:i], session.Stages[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// AddParameter agrega un parámetro objetivo a una etapa.
func AddParameter(session *entity.ProductDefinition, stageID, name, target string) error {
	for i := range session.Stages {
		if session.Stages[i].ID == stageID {
			session.Stages[i].Parameters = append(session.Stages[i].Parameters, entity.StageParameter{
				ID:          uuid.New().String(),
				Name:        name,
				TargetValue: target,
			})
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveParameter quita un parámetro de una etapa.
func RemoveParameter(session *entity.ProductDefinition, stageID, paramID string) error {
	for i := range session.Stages {
		if session.Stages[i].ID != stageID {
			continue
		}
		params := session.Stages[i].Parameters
		for j := range params {
			if params[j].ID == paramID {
				session.Stages[i].Parameters = append(params[:j], params[j+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// ── Checklist ─────────────────────────────────────────────────────────────────

// AddChecklistItem agrega un criterio vacío con categoría Visual.
func AddChecklistItem(session *entity.ProductDefinition) *entity.ChecklistItem {
	session.Checklist = append(session.Checklist, entity.ChecklistItem{
		ID:       uuid.New().String(),
		Category: "Visual",
	})
	return &session.Checklist[len(session.Checklist)-1]
}

// UpdateChecklistItem fija etiqueta y categoría de un criterio.
func UpdateChecklistItem(session *entity.ProductDefinition, itemID, label, category string) error {
	for i := range session.Checklist {
		if session.Checklist[i].ID == itemID {
			session.Checklist[i].Label = label
			session.Checklist[i].Category = category
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveChecklistItem quita un criterio de la sesión.
func RemoveChecklistItem(session *entity.ProductDefinition, itemID string) error {
	for i := range session.Checklist {
		if session.Checklist[i].ID == itemID {
			session.Checklist = append(session.Checklist[:i], session.Checklist[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ImportChecklist copia todos los criterios del producto origen al final del
// checklist de la sesión, con IDs nuevos por copia: importar dos veces el
// mismo origen no colisiona. No deduplica por etiqueta. Devuelve cuántos
// criterios se importaron.
func (uc *UseCase) ImportChecklist(session *entity.ProductDefinition, sourceProductID string) (int, error) {
	source, err := uc.products.GetByID(sourceProductID)
	if err != nil {
		return 0, err
	}
	for _, item := range source.Checklist {
		item.ID = uuid.New().String()
		session.Checklist = append(session.Checklist, item)
	}
	return len(source.Checklist), nil
}

// Categories vocabulario de categorías disponible durante la edición:
// semilla fija, categorías de todas las fichas confirmadas y las de la sesión
// (excluyendo la fila que se está tipeando).
func (uc *UseCase) Categories(session *entity.ProductDefinition, excludeItemID string) ([]string, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return dommaster.AvailableCategories(products, session, excludeItemID), nil
}

// ── Campos personalizados y ficha técnica ─────────────────────────────────────

// AddCustomField agrega un par clave/valor a la sesión.
func AddCustomField(session *entity.ProductDefinition, key, value string) {
	session.CustomFields = append(session.CustomFields, entity.CustomField{Key: key, Value: value})
}

// SpecSheet texto plano de la ficha técnica del producto.
func SpecSheet(p entity.ProductDefinition) string {
	return dommaster.SpecSheet(p)
}
