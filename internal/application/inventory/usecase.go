// Package inventory implementa los casos de uso sobre la colección de
// inventario: altas, ediciones, bajas, edición masiva de stock y consultas.
// Toda mutación que toca Stock o MaxStock rederiva el Status: el campo
// almacenado es un cache del cómputo puro, nunca se fija a mano.
package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	dominv "github.com/jhoicas/Planta-core/internal/domain/inventory"
	"github.com/jhoicas/Planta-core/internal/domain/repository"
)

// UseCase casos de uso de inventario.
type UseCase struct {
	repo       repository.InventoryRepository
	thresholds dominv.Thresholds
}

// NewUseCase construye el caso de uso con los umbrales de clasificación.
func NewUseCase(repo repository.InventoryRepository, thresholds dominv.Thresholds) *UseCase {
	return &UseCase{repo: repo, thresholds: thresholds}
}

// ItemDraft entrada de alta/edición de un ítem. Los numéricos ausentes se
// normalizan: stock y allocated a 0, maxStock a 100, unit a "pcs" y category
// a "General".
type ItemDraft struct {
	SKU       string
	Name      string
	Category  string
	Unit      string
	Stock     float64
	Allocated float64
	MaxStock  float64
	Value     decimal.Decimal
}

func (d *ItemDraft) normalize() error {
	if strings.TrimSpace(d.SKU) == "" || strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: SKU y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if d.Stock < 0 || d.Allocated < 0 || d.MaxStock < 0 || d.Value.IsNegative() {
		return fmt.Errorf("%w: los valores numéricos no pueden ser negativos", domain.ErrInvalidInput)
	}
	if d.MaxStock == 0 {
		d.MaxStock = 100
	}
	if d.Unit == "" {
		d.Unit = "pcs"
	}
	if d.Category == "" {
		d.Category = "General"
	}
	return nil
}

// AddItem crea un ítem con ID nuevo y Status derivado. El SKU debe ser único
// en la colección.
func (uc *UseCase) AddItem(draft ItemDraft) (*entity.InventoryItem, error) {
	if err := draft.normalize(); err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetBySKU(draft.SKU); existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		SKU:       draft.SKU,
		Name:      draft.Name,
		Category:  draft.Category,
		Stock:     draft.Stock,
		Allocated: draft.Allocated,
		Unit:      draft.Unit,
		MaxStock:  draft.MaxStock,
		Value:     draft.Value,
		Status:    uc.thresholds.Derive(draft.Stock, draft.MaxStock),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// EditItem reemplaza los datos del ítem y rederiva el Status.
func (uc *UseCase) EditItem(id string, draft ItemDraft) (*entity.InventoryItem, error) {
	if err := draft.normalize(); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if other, _ := uc.repo.GetBySKU(draft.SKU); other != nil && other.ID != id {
		return nil, domain.ErrDuplicateSKU
	}
	item.SKU = draft.SKU
	item.Name = draft.Name
	item.Category = draft.Category
	item.Stock = draft.Stock
	item.Allocated = draft.Allocated
	item.Unit = draft.Unit
	item.MaxStock = draft.MaxStock
	item.Value = draft.Value
	item.Status = uc.thresholds.Derive(draft.Stock, draft.MaxStock)
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem elimina el ítem. No hay borrado lógico: la baja es inmediata e
// irrecuperable dentro de la sesión.
func (uc *UseCase) DeleteItem(id string) error {
	return uc.repo.Delete(id)
}

// StockEdit una fila de la edición masiva de stock.
type StockEdit struct {
	ID       string
	NewStock float64
}

// RowError fila inválida de una edición masiva, con su motivo.
type RowError struct {
	ID     string
	SKU    string
	Reason error
}

// BulkValidationError rechazo completo de una edición masiva: lleva todas las
// filas inválidas para que el caller las muestre antes de reintentar.
type BulkValidationError struct {
	Rows []RowError
}

func (e *BulkValidationError) Error() string {
	return fmt.Sprintf("edición masiva rechazada: %d fila(s) inválida(s)", len(e.Rows))
}

// BulkUpdateStock aplica un conjunto de ediciones de stock como una sola
// operación. La validación es previa al commit y sobre el conjunto completo:
// si cualquier fila excede la capacidad máxima (o es negativa, o refiere un
// ítem inexistente) se rechaza todo sin aplicar nada. En éxito, cada ítem
// editado rederiva su Status.
func (uc *UseCase) BulkUpdateStock(edits []StockEdit) error {
	if len(edits) == 0 {
		return domain.ErrInvalidInput
	}
	var invalid []RowError
	updated := make([]*entity.InventoryItem, 0, len(edits))
	for _, e := range edits {
		item, err := uc.repo.GetByID(e.ID)
		if err != nil {
			invalid = append(invalid, RowError{ID: e.ID, Reason: domain.ErrNotFound})
			continue
		}
		if e.NewStock < 0 {
			invalid = append(invalid, RowError{ID: e.ID, SKU: item.SKU, Reason: domain.ErrInvalidInput})
			continue
		}
		if e.NewStock > item.MaxStock {
			invalid = append(invalid, RowError{ID: e.ID, SKU: item.SKU, Reason: domain.ErrStockExceedsMax})
			continue
		}
		item.Stock = e.NewStock
		item.Status = uc.thresholds.Derive(e.NewStock, item.MaxStock)
		updated = append(updated, item)
	}
	if len(invalid) > 0 {
		return &BulkValidationError{Rows: invalid}
	}
	return uc.repo.UpdateAll(updated)
}

// Search consulta de solo lectura: filtro por estado (vacío = todos) y
// búsqueda por subcadena insensible a mayúsculas en nombre, SKU o categoría.
// Cero resultados es un resultado válido.
func (uc *UseCase) Search(query string, status entity.InventoryStatus) ([]entity.InventoryItem, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if status != "" && it.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.SKU), q) &&
			!strings.Contains(strings.ToLower(it.Category), q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Summary indicadores de cabecera del inventario.
type Summary struct {
	ItemCount      int
	AlertCount     int             // ítems con estado distinto de OK
	TotalValuation decimal.Decimal // suma de stock * valor unitario
}

// Summary calcula los indicadores agregados de la colección.
func (uc *UseCase) Summary() (Summary, error) {
	items, err := uc.repo.List()
	if err != nil {
		return Summary{}, err
	}
	s := Summary{ItemCount: len(items), TotalValuation: decimal.Zero}
	for _, it := range items {
		if it.Status != entity.StatusOK {
			s.AlertCount++
		}
		s.TotalValuation = s.TotalValuation.Add(it.Valuation())
	}
	return s, nil
}
