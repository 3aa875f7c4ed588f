package entity

import "time"

// InspectionStatus resultado global de una inspección, derivado del puntaje.
type InspectionStatus string

const (
	InspectionPass        InspectionStatus = "Pass"
	InspectionFail        InspectionStatus = "Fail"
	InspectionConditional InspectionStatus = "Conditional"
)

// ItemStatus resultado de un criterio individual del checklist.
type ItemStatus string

const (
	ItemPass    ItemStatus = "pass"
	ItemFail    ItemStatus = "fail"
	ItemNA      ItemStatus = "na"
	ItemPending ItemStatus = "pending"
)

// InspectionItem un criterio de inspección. Se copia desde la plantilla del
// producto al crear la inspección: cada inspección es dueña de sus copias, de
// modo que editar la plantilla no altera inspecciones históricas.
type InspectionItem struct {
	ID       string
	Label    string
	Category string
	Status   ItemStatus
	Notes    string
}

// Inspection registro de control de calidad sobre un lote. Score y Status se
// derivan de Items al momento del envío; una vez enviada, la inspección es de
// solo lectura (el historial es append-only).
type Inspection struct {
	ID           string
	BatchID      string
	Product      string
	SKU          string
	Inspector    string
	Date         time.Time
	Status       InspectionStatus
	Score        int
	Items        []InspectionItem
	OverallNotes string
}

// Clone devuelve una copia profunda de la inspección.
func (in Inspection) Clone() Inspection {
	out := in
	out.Items = append([]InspectionItem(nil), in.Items...)
	return out
}
