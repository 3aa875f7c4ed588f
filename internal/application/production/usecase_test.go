package production_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appproduction "github.com/jhoicas/Planta-core/internal/application/production"
	"github.com/jhoicas/Planta-core/internal/domain"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) *appproduction.UseCase {
	t.Helper()
	orders := memory.NewPurchaseOrderRepository([]entity.PurchaseOrder{{
		ID: "PO-1", Customer: "Acme Corp", Product: "Hydraulic Pump X1",
		SKU: "HYD-PUMP-X1", TotalQty: 1000, FulfilledQty: 200,
	}})
	products := memory.NewProductRepository([]entity.ProductDefinition{{
		ID: "prod-1", SKU: "HYD-PUMP-X1", Name: "Hydraulic Pump X1",
		Stages: []entity.ProcessStageDefinition{
			{ID: "sd1", Name: "Casting"},
			{ID: "sd2", Name: "Machining"},
			{ID: "sd3", Name: "Testing"},
		},
	}})
	return appproduction.NewUseCase(memory.NewBatchRepository(nil), orders, products)
}

// El lote nace Planned, con ID fresco, etapas copiadas de la ficha maestra
// (IDs nuevos, todas pendientes) y la entrada de creación en la bitácora.
func TestCreateBatch(t *testing.T) {
	uc := newUseCase(t)

	batch, err := uc.CreateBatch("PO-1", 500)
	require.NoError(t, err)
	assert.Contains(t, batch.ID, "BATCH-")
	assert.Equal(t, entity.BatchPlanned, batch.Status)
	assert.Equal(t, "Acme Corp", batch.Customer)
	require.Len(t, batch.Stages, 3)
	for _, s := range batch.Stages {
		assert.Equal(t, entity.StagePending, s.Status)
		assert.NotEmpty(t, s.ID)
	}
	require.Len(t, batch.Logs, 1)
	assert.Equal(t, "Batch created", batch.Logs[0].Message)
}

// Lo disponible es total menos entregado menos lo ya planificado: planificar
// dos lotes consume el remanente y el tercero se rechaza con el saldo.
func TestCreateBatch_NoExcedeLaOrden(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.CreateBatch("PO-1", 500)
	require.NoError(t, err)
	_, err = uc.CreateBatch("PO-1", 300)
	require.NoError(t, err)

	available, err := uc.AvailableQty("PO-1")
	require.NoError(t, err)
	assert.Equal(t, 0, available)

	_, err = uc.CreateBatch("PO-1", 1)
	assert.ErrorIs(t, err, domain.ErrQtyExceedsPO)
}

// Cantidad no positiva y orden inexistente se rechazan antes de crear nada.
func TestCreateBatch_Entradas(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.CreateBatch("PO-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateBatch("PO-999", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Avanzar dos veces la primera etapa la completa, auto-activa la sucesora y
// antepone la entrada de bitácora; el lote pasa a Active.
func TestAdvanceStage(t *testing.T) {
	uc := newUseCase(t)
	batch, err := uc.CreateBatch("PO-1", 100)
	require.NoError(t, err)
	first := batch.Stages[0].ID

	batch, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)
	assert.Equal(t, entity.StageActive, batch.Stages[0].Status)
	assert.Equal(t, entity.BatchActive, batch.Status)
	assert.Len(t, batch.Logs, 1, "activar no escribe bitácora")

	batch, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)
	assert.Equal(t, entity.StageCompleted, batch.Stages[0].Status)
	assert.Equal(t, entity.StageActive, batch.Stages[1].Status)
	require.Len(t, batch.Logs, 2)
	assert.Equal(t, `Stage "Casting" completed`, batch.Logs[0].Message, "la más reciente primero")
	assert.Equal(t, "User Action", batch.Logs[0].Source)
	assert.Equal(t, 33, uc.Progress(batch))
}

// Saltarse el orden de etapas no muta el lote persistido.
func TestAdvanceStage_FueraDeOrden(t *testing.T) {
	uc := newUseCase(t)
	batch, err := uc.CreateBatch("PO-1", 100)
	require.NoError(t, err)

	_, err = uc.AdvanceStage(batch.ID, batch.Stages[2].ID)
	assert.ErrorIs(t, err, domain.ErrStageNotAdvanceable)

	stored, err := uc.Get(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StagePending, stored.Stages[2].Status)
}

// Revertir deshace la finalización más reciente, regresa la sucesora a
// pending y registra la corrección al frente de la bitácora.
func TestRevertStage(t *testing.T) {
	uc := newUseCase(t)
	batch, err := uc.CreateBatch("PO-1", 100)
	require.NoError(t, err)
	first := batch.Stages[0].ID
	_, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)
	_, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)

	batch, err = uc.RevertStage(batch.ID, first)
	require.NoError(t, err)
	assert.Equal(t, entity.StageActive, batch.Stages[0].Status)
	assert.Nil(t, batch.Stages[0].CompletedAt)
	assert.Equal(t, entity.StagePending, batch.Stages[1].Status)
	assert.Equal(t, `Stage "Casting" marked incomplete`, batch.Logs[0].Message)
	assert.Equal(t, "User Correction", batch.Logs[0].Source)
}

// La marca de tiempo manual solo aplica sobre etapas ya completadas.
func TestSetStageCompletedAt(t *testing.T) {
	uc := newUseCase(t)
	batch, err := uc.CreateBatch("PO-1", 100)
	require.NoError(t, err)
	first := batch.Stages[0].ID

	when := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	_, err = uc.SetStageCompletedAt(batch.ID, first, when)
	assert.ErrorIs(t, err, domain.ErrConflict, "pendiente no admite marca manual")

	_, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)
	_, err = uc.AdvanceStage(batch.ID, first)
	require.NoError(t, err)

	batch, err = uc.SetStageCompletedAt(batch.ID, first, when)
	require.NoError(t, err)
	require.NotNil(t, batch.Stages[0].CompletedAt)
	assert.Equal(t, when, *batch.Stages[0].CompletedAt)
	assert.Equal(t, entity.StageCompleted, batch.Stages[0].Status)
}

// Sin ficha maestra para el SKU se usa la plantilla de cinco etapas.
func TestCreateBatch_PlantillaPorDefecto(t *testing.T) {
	orders := memory.NewPurchaseOrderRepository([]entity.PurchaseOrder{{
		ID: "PO-2", Customer: "Beta Inc", Product: "Widget", SKU: "WID-01", TotalQty: 100,
	}})
	uc := appproduction.NewUseCase(
		memory.NewBatchRepository(nil), orders, memory.NewProductRepository(nil))

	batch, err := uc.CreateBatch("PO-2", 10)
	require.NoError(t, err)
	require.Len(t, batch.Stages, 5)
	assert.Equal(t, "Material Cut", batch.Stages[0].Name)
	assert.Equal(t, "Packaging", batch.Stages[4].Name)
}
