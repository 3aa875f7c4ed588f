package masterdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmasterdata "github.com/jhoicas/Planta-core/internal/application/masterdata"
	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*appmasterdata.UseCase, *memory.ProductRepo) {
	t.Helper()
	products := memory.NewProductRepository([]entity.ProductDefinition{
		{
			ID: "prod-1", SKU: "HYD-PUMP-X1", Name: "Hydraulic Pump X1", Version: "2.1",
			Checklist: []entity.ChecklistItem{
				{ID: "c1", Label: "Check casing", Category: "Visual"},
			},
		},
		{
			ID: "prod-2", SKU: "ELEC-CIRC-V2", Name: "Circuit Board V2", Version: "1.0",
			Checklist: []entity.ChecklistItem{
				{ID: "c2", Label: "Solder joints", Category: "Electrical"},
				{ID: "c3", Label: "Continuity test", Category: "Electrical"},
			},
		},
	})
	inventory := memory.NewInventoryRepository([]entity.InventoryItem{
		{ID: "inv-1", SKU: "STL-01", Name: "Steel Rod", Unit: "kg"},
		{ID: "inv-2", SKU: "ALU-02", Name: "Aluminum Sheet", Unit: "pcs"},
	})
	return appmasterdata.NewUseCase(products, inventory), products
}

// La sesión de edición es una copia: mutarla no toca la ficha confirmada
// hasta Save, y abandonarla equivale a descartar los cambios.
func TestBeginEdit_AislamientoDeSesion(t *testing.T) {
	uc, _ := newUseCase(t)

	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)
	session.Name = "Renamed Pump"
	appmasterdata.AddChecklistItem(session)

	committed, err := uc.Get("prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Hydraulic Pump X1", committed.Name)
	assert.Len(t, committed.Checklist, 1)

	require.NoError(t, uc.Save(session))
	committed, err = uc.Get("prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed Pump", committed.Name)
	assert.Len(t, committed.Checklist, 2)
	assert.False(t, committed.LastModified.IsZero())
}

// BeginCreate arma una ficha con valores de partida; Save la agrega como
// ficha nueva en lugar de reemplazar.
func TestBeginCreate(t *testing.T) {
	uc, _ := newUseCase(t)

	session := uc.BeginCreate()
	assert.Contains(t, session.ID, "prod-")
	assert.Equal(t, "New Product", session.Name)

	session.SKU = "GEAR-03"
	session.Name = "Gearbox"
	require.NoError(t, uc.Save(session))

	all, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// Save exige SKU y nombre, y rechaza un SKU ya usado por otra ficha; la ficha
// puede conservar su propio SKU.
func TestSave_Validacion(t *testing.T) {
	uc, _ := newUseCase(t)

	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)

	session.Name = " "
	assert.ErrorIs(t, uc.Save(session), domain.ErrInvalidInput)

	session.Name = "Pump"
	session.SKU = "ELEC-CIRC-V2"
	assert.ErrorIs(t, uc.Save(session), domain.ErrDuplicateSKU)

	session.SKU = "HYD-PUMP-X1"
	assert.NoError(t, uc.Save(session))
}

// Importar copia los criterios del origen con IDs nuevos por copia: importar
// dos veces el mismo origen duplica los criterios sin colisión de IDs.
func TestImportChecklist_IDsFrescos(t *testing.T) {
	uc, _ := newUseCase(t)
	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)

	n, err := uc.ImportChecklist(session, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = uc.ImportChecklist(session, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, session.Checklist, 5)
	seen := make(map[string]struct{}, len(session.Checklist))
	for _, item := range session.Checklist {
		_, dup := seen[item.ID]
		assert.False(t, dup, "ID repetido: %s", item.ID)
		seen[item.ID] = struct{}{}
		assert.NotEqual(t, "c2", item.ID)
		assert.NotEqual(t, "c3", item.ID)
	}
}

// El vocabulario de categorías une semilla, fichas confirmadas y sesión.
func TestCategories(t *testing.T) {
	uc, _ := newUseCase(t)
	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)
	item := appmasterdata.AddChecklistItem(session)
	require.NoError(t, appmasterdata.UpdateChecklistItem(session, item.ID, "Noise level", "Acoustic"))

	cats, err := uc.Categories(session, "")
	require.NoError(t, err)
	assert.Contains(t, cats, "Electrical", "viene de una ficha confirmada")
	assert.Contains(t, cats, "Acoustic", "viene de la sesión")
	assert.Contains(t, cats, "Packaging", "viene de la semilla")
}

// El BOM toma el primer material aún no usado en la sesión y cachea nombre y
// unidad; la cantidad debe ser positiva.
func TestBOM(t *testing.T) {
	uc, _ := newUseCase(t)
	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)

	line, err := uc.AddBOMItem(session)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", line.InventoryItemID)
	assert.Equal(t, "Steel Rod", line.InventoryItemName)
	assert.Equal(t, "kg", line.Unit)
	assert.Equal(t, 1.0, line.Quantity)

	second, err := uc.AddBOMItem(session)
	require.NoError(t, err)
	assert.Equal(t, "inv-2", second.InventoryItemID, "salta los materiales ya usados")

	assert.ErrorIs(t, appmasterdata.SetBOMItemQuantity(session, line.ID, 0), domain.ErrInvalidInput)
	require.NoError(t, appmasterdata.SetBOMItemQuantity(session, line.ID, 4.5))
	assert.Equal(t, 4.5, session.BOM[0].Quantity)

	require.NoError(t, uc.SetBOMItemSource(session, second.ID, "inv-1"))
	assert.Equal(t, "Steel Rod", session.BOM[1].InventoryItemName)

	require.NoError(t, appmasterdata.RemoveBOMItem(session, line.ID))
	assert.Len(t, session.BOM, 1)
}

// Las etapas de proceso llevan orden incremental y parámetros anidados.
func TestStagesYParametros(t *testing.T) {
	uc, _ := newUseCase(t)
	session, err := uc.BeginEdit("prod-1")
	require.NoError(t, err)

	s1 := appmasterdata.AddStage(session, "Casting")
	s2 := appmasterdata.AddStage(session, "Machining")
	assert.Equal(t, 1, s1.Order)
	assert.Equal(t, 2, s2.Order)

	require.NoError(t, appmasterdata.AddParameter(session, s1.ID, "Temperature", "650C"))
	require.Len(t, session.Stages[0].Parameters, 1)
	paramID := session.Stages[0].Parameters[0].ID
	require.NoError(t, appmasterdata.RemoveParameter(session, s1.ID, paramID))
	assert.Empty(t, session.Stages[0].Parameters)

	require.NoError(t, appmasterdata.RemoveStage(session, s2.ID))
	assert.Len(t, session.Stages, 1)
}
