package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
	"github.com/jhoicas/Planta-core/internal/domain/inventory"
)

// La clasificación debe respetar los límites exactos: ratio <= 0.2 Critical,
// <= 0.3 Low, el resto OK (inclusivos por abajo).
func TestDeriveStatus_Limites(t *testing.T) {
	cases := []struct {
		name     string
		stock    float64
		maxStock float64
		want     entity.InventoryStatus
	}{
		{"ratio cero", 0, 100, entity.StatusCritical},
		{"justo en 0.2", 20, 100, entity.StatusCritical},
		{"apenas sobre 0.2", 20.01, 100, entity.StatusLow},
		{"justo en 0.3", 30, 100, entity.StatusLow},
		{"apenas sobre 0.3", 30.01, 100, entity.StatusOK},
		{"stock lleno", 100, 100, entity.StatusOK},
		{"sobre capacidad", 150, 100, entity.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.DeriveStatus(tc.stock, tc.maxStock))
		})
	}
}

// MaxStock <= 0 devuelve OK para cualquier stock (guarda de división por cero).
func TestDeriveStatus_CapacidadCero(t *testing.T) {
	for _, stock := range []float64{0, 1, 50, 1e9} {
		assert.Equal(t, entity.StatusOK, inventory.DeriveStatus(stock, 0))
		assert.Equal(t, entity.StatusOK, inventory.DeriveStatus(stock, -10))
	}
}

// La severidad es monótona no creciente al subir el ratio: una vez que el
// stock mejora, el estado nunca empeora.
func TestDeriveStatus_Monotonia(t *testing.T) {
	rank := map[entity.InventoryStatus]int{
		entity.StatusCritical: 0,
		entity.StatusLow:      1,
		entity.StatusOK:       2,
	}
	prev := -1
	for stock := 0.0; stock <= 100; stock += 0.5 {
		got := rank[inventory.DeriveStatus(stock, 100)]
		assert.GreaterOrEqual(t, got, prev, "retroceso de estado en stock=%v", stock)
		prev = got
	}
}

// Los umbrales configurables se aplican en lugar de los estándar.
func TestDeriveStatus_UmbralesPersonalizados(t *testing.T) {
	th := inventory.Thresholds{Critical: 0.5, Low: 0.8}
	assert.Equal(t, entity.StatusCritical, th.Derive(50, 100))
	assert.Equal(t, entity.StatusLow, th.Derive(80, 100))
	assert.Equal(t, entity.StatusOK, th.Derive(81, 100))
}
