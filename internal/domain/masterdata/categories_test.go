package masterdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/masterdata"
)

// Sin productos ni sesión, el vocabulario es exactamente la semilla, ordenada.
func TestAvailableCategories_Semilla(t *testing.T) {
	got := masterdata.AvailableCategories(nil, nil, "")
	assert.Equal(t, []string{"Dimensional", "Functional", "Packaging", "Visual"}, got)
}

// La unión incluye categorías de fichas confirmadas y de la sesión en curso,
// sin duplicados.
func TestAvailableCategories_Union(t *testing.T) {
	products := []entity.ProductDefinition{
		{Checklist: []entity.ChecklistItem{{ID: "c1", Category: "Electrical"}}},
		{Checklist: []entity.ChecklistItem{{ID: "c2", Category: "Visual"}}},
	}
	session := &entity.ProductDefinition{
		Checklist: []entity.ChecklistItem{{ID: "s1", Category: "Acoustic"}},
	}
	got := masterdata.AvailableCategories(products, session, "")
	assert.Equal(t, []string{"Acoustic", "Dimensional", "Electrical", "Functional", "Packaging", "Visual"}, got)
}

// La fila que se está tipeando queda fuera: un valor a medio escribir no debe
// aparecer como opción seleccionable. Las categorías vacías tampoco entran.
func TestAvailableCategories_ExcluyeFilaEnEdicion(t *testing.T) {
	session := &entity.ProductDefinition{
		Checklist: []entity.ChecklistItem{
			{ID: "s1", Category: "Acou"}, // a medio tipear
			{ID: "s2", Category: "Thermal"},
			{ID: "s3", Category: ""},
		},
	}
	got := masterdata.AvailableCategories(nil, session, "s1")
	assert.NotContains(t, got, "Acou")
	assert.Contains(t, got, "Thermal")
	assert.NotContains(t, got, "")
}

// La ficha técnica lista nombre, SKU, descripción y solo los campos
// personalizados con clave y valor presentes.
func TestSpecSheet(t *testing.T) {
	p := entity.ProductDefinition{
		Name: "Hydraulic Pump X1", SKU: "HYD-PUMP-X1",
		Description: "High pressure pump.",
		CustomFields: []entity.CustomField{
			{Key: "Weight", Value: "4.5kg"},
			{Key: "Incomplete", Value: ""},
		},
	}
	got := masterdata.SpecSheet(p)
	assert.Equal(t, "Product Name: Hydraulic Pump X1\nSKU: HYD-PUMP-X1\nDescription: High pressure pump.\n\nWeight: 4.5kg", got)
}

// Sin campos personalizados completos, la ficha lo dice explícitamente y la
// descripción vacía se reporta como N/A.
func TestSpecSheet_SinCampos(t *testing.T) {
	got := masterdata.SpecSheet(entity.ProductDefinition{Name: "X", SKU: "S"})
	assert.Contains(t, got, "Description: N/A")
	assert.Contains(t, got, "No custom specifications defined.")
}
