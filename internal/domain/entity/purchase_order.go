package entity

import "time"

// PurchaseOrder orden de compra de un cliente contra la que se planifican lotes.
// FulfilledQty es lo ya entregado; lo planificado en lotes se calcula aparte.
type PurchaseOrder struct {
	ID           string
	Customer     string
	Product      string
	SKU          string
	TotalQty     int
	FulfilledQty int
	DueDate      time.Time
}
