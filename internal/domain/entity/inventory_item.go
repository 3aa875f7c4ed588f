package entity

import "github.com/shopspring/decimal"

// InventoryStatus clasificación derivada del nivel de stock frente a la capacidad.
// Nunca se asigna directamente: siempre es el resultado de inventory.DeriveStatus.
type InventoryStatus string

const (
	StatusOK       InventoryStatus = "OK"
	StatusLow      InventoryStatus = "Low"
	StatusCritical InventoryStatus = "Critical"
)

// InventoryItem representa un material o componente en bodega de la planta.
// Status es un campo derivado (cache de inventory.DeriveStatus); un registro
// con Status desactualizado respecto a Stock/MaxStock es un bug.
type InventoryItem struct {
	ID        string
	SKU       string
	Name      string
	Category  string
	Stock     float64
	Allocated float64
	Unit      string
	MaxStock  float64
	Value     decimal.Decimal // valor unitario
	Status    InventoryStatus
}

// Valuation devuelve el valor total de la posición (stock * valor unitario).
func (i InventoryItem) Valuation() decimal.Decimal {
	return decimal.NewFromFloat(i.Stock).Mul(i.Value)
}
