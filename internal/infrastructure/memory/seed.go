package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/inventory"
)

// Datos de arranque de la planta de demostración (Austin Plant A). Todo el
// estado es efímero: se construye aquí al iniciar el proceso.

// SeedInventory ítems de inventario iniciales. El Status se deriva al sembrar
// para garantizar el invariante stock/capacidad desde el primer momento.
func SeedInventory() []entity.InventoryItem {
	items := []entity.InventoryItem{
		{ID: "inv-1", SKU: "STL-SHEET-04", Name: "Steel Sheet 4mm", Category: "Raw Materials", Stock: 1240, Allocated: 200, Unit: "sheets", MaxStock: 2000, Value: decimal.NewFromFloat(45.00)},
		{ID: "inv-2", SKU: "BOLT-HEX-M8", Name: "M8 Hex Bolt", Category: "Hardware", Stock: 450, Allocated: 0, Unit: "pcs", MaxStock: 2000, Value: decimal.NewFromFloat(0.15)},
		{ID: "inv-3", SKU: "ELEC-CIRC-V2", Name: "Circuit Board v2", Category: "Electronics", Stock: 12, Allocated: 10, Unit: "units", MaxStock: 100, Value: decimal.NewFromFloat(120.00)},
		{ID: "inv-4", SKU: "PKG-BOX-L", Name: "Large Cardboard Box", Category: "Packaging", Stock: 4200, Allocated: 500, Unit: "pcs", MaxStock: 5000, Value: decimal.NewFromFloat(1.50)},
		{ID: "inv-5", SKU: "PNT-IND-BLK", Name: "Industrial Paint (Black)", Category: "Consumables", Stock: 25, Allocated: 20, Unit: "L", MaxStock: 200, Value: decimal.NewFromFloat(85.00)},
		{ID: "inv-6", SKU: "RUB-SEAL-22", Name: "Rubber Seal 22mm", Category: "Hardware", Stock: 800, Allocated: 150, Unit: "pcs", MaxStock: 1000, Value: decimal.NewFromFloat(2.20)},
		{ID: "inv-7", SKU: "ALU-PROF-20", Name: "Aluminum Profile 2020", Category: "Raw Materials", Stock: 150, Allocated: 120, Unit: "m", MaxStock: 500, Value: decimal.NewFromFloat(12.50)},
		{ID: "inv-8", SKU: "HYD-VALVE-X", Name: "Hydraulic Valve Type X", Category: "Components", Stock: 65, Allocated: 5, Unit: "units", MaxStock: 100, Value: decimal.NewFromFloat(240.00)},
	}
	for i := range items {
		items[i].Status = inventory.DeriveStatus(items[i].Stock, items[i].MaxStock)
	}
	return items
}

// SeedPurchaseOrders órdenes de compra abiertas.
func SeedPurchaseOrders() []entity.PurchaseOrder {
	return []entity.PurchaseOrder{
		{ID: "PO-2024-001", Customer: "Customer A", Product: "Hydraulic Pump X1", SKU: "HYD-PUMP-X1", TotalQty: 5000, FulfilledQty: 0, DueDate: date(2024, 6, 15)},
		{ID: "PO-2024-002", Customer: "Customer B", Product: "Hydraulic Pump X1", SKU: "HYD-PUMP-X1", TotalQty: 1000, FulfilledQty: 0, DueDate: date(2024, 4, 20)},
		{ID: "PO-2024-003", Customer: "Tech Solutions", Product: "Circuit Board v2", SKU: "ELEC-CIRC-V2", TotalQty: 500, FulfilledQty: 100, DueDate: date(2024, 5, 1)},
	}
}

// SeedBatches lotes de producción iniciales.
func SeedBatches() []entity.ProductionBatch {
	etched := time.Date(2024, 3, 10, 14, 15, 0, 0, time.UTC)
	return []entity.ProductionBatch{
		{
			ID:           "BATCH-1001",
			POID:         "PO-2024-003",
			Customer:     "Tech Solutions",
			Product:      "Circuit Board v2",
			SKU:          "ELEC-CIRC-V2",
			Quantity:     100,
			CompletedQty: 45,
			Status:       entity.BatchActive,
			Priority:     "High",
			StartDate:    date(2024, 3, 10),
			Stages: []entity.ProductionStage{
				{ID: "s1", Name: "PCB Etching", Status: entity.StageCompleted, Assignee: "Auto-Machine 1", CompletedAt: &etched},
				{ID: "s2", Name: "Component Mount", Status: entity.StageActive, Assignee: "Line 2"},
				{ID: "s3", Name: "Soldering", Status: entity.StagePending, Assignee: "Line 2"},
				{ID: "s4", Name: "Firmware Load", Status: entity.StagePending, Assignee: "Tech A"},
			},
			Logs: []entity.BatchLog{
				{Time: etched, Message: "PCB Etching completed", Source: "System"},
				{Time: time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), Message: "Batch started", Source: "Auto-Machine 1"},
			},
		},
	}
}

// SeedInspections historial inicial de inspecciones, más reciente primero.
// Los registros históricos no conservan sus checklists.
func SeedInspections() []entity.Inspection {
	return []entity.Inspection{
		{ID: "INS-2024-884", BatchID: "BATCH-1001", Product: "Circuit Board v2", SKU: "ELEC-CIRC-V2", Inspector: "Sarah J.", Date: date(2024, 3, 12), Status: entity.InspectionPass, Score: 98},
		{ID: "INS-2024-883", BatchID: "BATCH-0998", Product: "Hydraulic Pump X1", SKU: "HYD-PUMP-X1", Inspector: "Mike R.", Date: date(2024, 3, 11), Status: entity.InspectionFail, Score: 65},
		{ID: "INS-2024-882", BatchID: "BATCH-0995", Product: "Steel Housing", SKU: "STL-SHEET-04", Inspector: "Sarah J.", Date: date(2024, 3, 10), Status: entity.InspectionPass, Score: 100},
		{ID: "INS-2024-881", BatchID: "BATCH-0992", Product: "Circuit Board v2", SKU: "ELEC-CIRC-V2", Inspector: "Auto-Vision", Date: date(2024, 3, 9), Status: entity.InspectionConditional, Score: 85},
	}
}

// SeedProducts fichas maestras iniciales.
func SeedProducts() []entity.ProductDefinition {
	return []entity.ProductDefinition{
		{
			ID: "prod-1", SKU: "HYD-PUMP-X1", Name: "Hydraulic Pump X1",
			Description: "High pressure hydraulic pump for industrial applications.",
			Version:     "1.2", LastModified: date(2024, 3, 10),
			BOM: []entity.BOMItemDefinition{
				{ID: "b1", InventoryItemID: "inv-1", InventoryItemName: "Steel Sheet 4mm", Quantity: 2, Unit: "sheets"},
				{ID: "b2", InventoryItemID: "inv-2", InventoryItemName: "M8 Hex Bolt", Quantity: 12, Unit: "pcs"},
				{ID: "b3", InventoryItemID: "inv-6", InventoryItemName: "Rubber Seal 22mm", Quantity: 4, Unit: "pcs"},
			},
			Stages: []entity.ProcessStageDefinition{
				{ID: "st1", Name: "Material Cutting", Description: "Cut steel sheets to size", Order: 1, Parameters: []entity.StageParameter{{ID: "p1", Name: "Tolerance", TargetValue: "±0.5mm"}}},
				{ID: "st2", Name: "Assembly A", Description: "Assemble main housing", Order: 2, Parameters: []entity.StageParameter{{ID: "p2", Name: "Torque", TargetValue: "25Nm"}}},
				{ID: "st3", Name: "Painting", Description: "Apply protective coating", Order: 3, Parameters: []entity.StageParameter{{ID: "p3", Name: "Color", TargetValue: "Matte Black"}, {ID: "p4", Name: "Coats", TargetValue: "2"}}},
			},
			Checklist: []entity.ChecklistItem{
				{ID: "c1", Label: "Surface finish free of scratches/dents", Category: "Visual"},
				{ID: "c2", Label: "Color consistency matches master sample", Category: "Visual"},
				{ID: "c3", Label: "Pressure test @ 100psi", Category: "Functional"},
				{ID: "c4", Label: "Piston movement smooth", Category: "Functional"},
			},
			CustomFields: []entity.CustomField{
				{Key: "Weight", Value: "4.5kg"},
				{Key: "Material Grade", Value: "316L"},
			},
		},
		{
			ID: "prod-2", SKU: "ELEC-CIRC-V2", Name: "Circuit Board v2",
			Description: "Main control unit for Z-series automation.",
			Version:     "2.0", LastModified: date(2024, 3, 12),
			BOM: []entity.BOMItemDefinition{
				{ID: "b4", InventoryItemID: "inv-3", InventoryItemName: "Circuit Board v2", Quantity: 1, Unit: "units"},
				{ID: "b5", InventoryItemID: "inv-4", InventoryItemName: "Packaging Box", Quantity: 1, Unit: "pcs"},
			},
			Stages: []entity.ProcessStageDefinition{
				{ID: "st4", Name: "PCB Inspection", Description: "Visual check of soldering", Order: 1},
				{ID: "st5", Name: "Firmware Flash", Description: "Upload v2.0 firmware", Order: 2, Parameters: []entity.StageParameter{{ID: "p5", Name: "Version", TargetValue: "2.0.4"}}},
				{ID: "st6", Name: "Final Testing", Description: "Run diagnostic suite", Order: 3, Parameters: []entity.StageParameter{{ID: "p6", Name: "Pass Score", TargetValue: "98%"}}},
			},
			Checklist: []entity.ChecklistItem{
				{ID: "c5", Label: "Soldering joints inspection", Category: "Visual"},
				{ID: "c6", Label: "Component placement verification", Category: "Visual"},
				{ID: "c7", Label: "Power-on self test (POST)", Category: "Functional"},
				{ID: "c8", Label: "Firmware version verification", Category: "Functional"},
				{ID: "c9", Label: "ESD Packaging secure", Category: "Packaging"},
			},
			CustomFields: []entity.CustomField{
				{Key: "Input Voltage", Value: "24V DC"},
				{Key: "IP Rating", Value: "IP67"},
			},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
