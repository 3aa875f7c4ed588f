package entity

import "time"

// BOMItemDefinition una línea de la lista de materiales de un producto.
// InventoryItemName y Unit son caches de display resueltos contra inventario.
type BOMItemDefinition struct {
	ID                string
	InventoryItemID   string
	InventoryItemName string
	Quantity          float64
	Unit              string
}

// StageParameter parámetro objetivo de una etapa de proceso (ej. Torque: 25Nm).
type StageParameter struct {
	ID          string
	Name        string
	TargetValue string
}

// ProcessStageDefinition etapa del proceso de fabricación definida en la
// ficha maestra. Order determina la secuencia de las etapas del lote.
type ProcessStageDefinition struct {
	ID          string
	Name        string
	Description string
	Order       int
	Parameters  []StageParameter
}

// ChecklistItem criterio de inspección de la plantilla de calidad del producto.
// Category es un vocabulario abierto (ver masterdata.AvailableCategories).
type ChecklistItem struct {
	ID       string
	Label    string
	Category string
}

// CustomField par clave/valor libre de la ficha del producto.
type CustomField struct {
	Key   string
	Value string
}

// ProductDefinition ficha maestra de un producto: BOM, etapas de proceso y
// plantilla de checklist. Es de lectura frecuente por inventario y calidad;
// solo se muta a través del editor de datos maestros, que trabaja sobre una
// copia profunda y confirma (o descarta) de forma atómica.
type ProductDefinition struct {
	ID           string
	SKU          string
	Name         string
	Description  string
	Version      string
	Category     string
	BOM          []BOMItemDefinition
	Stages       []ProcessStageDefinition
	Checklist    []ChecklistItem
	CustomFields []CustomField
	LastModified time.Time
}

// Clone devuelve una copia profunda de la ficha, para sesiones de edición.
func (p ProductDefinition) Clone() ProductDefinition {
	out := p
	out.BOM = append([]BOMItemDefinition(nil), p.BOM...)
	out.Stages = make([]ProcessStageDefinition, len(p.Stages))
	for i, s := range p.Stages {
		out.Stages[i] = s
		out.Stages[i].Parameters = append([]StageParameter(nil), s.Parameters...)
	}
	out.Checklist = append([]ChecklistItem(nil), p.Checklist...)
	out.CustomFields = append([]CustomField(nil), p.CustomFields...)
	return out
}
