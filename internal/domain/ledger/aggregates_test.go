package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/ledger"
)

func producto(id string, price int64, qty, maxStock int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		Category: "Categoría 1",
		Price:    decimal.NewFromInt(price),
		Quantity: qty,
		MaxStock: maxStock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock — regla: quantity < max_stock * ratio (estricto)
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_FiltraBajoUmbralDel20PorCiento(t *testing.T) {
	products := []*entity.Product{
		producto("a", 50, 3, 40),  // umbral 8  → bajo
		producto("b", 100, 15, 50), // umbral 10 → ok
		producto("c", 75, 8, 30),  // umbral 6  → ok
	}

	low := ledger.LowStock(products, 0.2)

	require.Len(t, low, 1)
	assert.Equal(t, "a", low[0].ID)
}

func TestLowStock_UmbralEsEstricto(t *testing.T) {
	// quantity == umbral exacto no es stock bajo (la regla es <, no <=)
	products := []*entity.Product{
		producto("exacto", 10, 2, 10), // umbral 2 → 2 < 2 es falso
		producto("debajo", 10, 1, 10), // umbral 2 → 1 < 2 es verdadero
	}

	low := ledger.LowStock(products, 0.2)

	require.Len(t, low, 1)
	assert.Equal(t, "debajo", low[0].ID)
}

func TestLowStock_PreservaOrdenDeEntrada(t *testing.T) {
	products := []*entity.Product{
		producto("z", 10, 0, 10),
		producto("a", 10, 1, 10),
	}

	low := ledger.LowStock(products, 0.2)

	require.Len(t, low, 2)
	assert.Equal(t, "z", low[0].ID)
	assert.Equal(t, "a", low[1].ID)
}

func TestLowStock_RatioNoPositivoUsaDefault(t *testing.T) {
	products := []*entity.Product{producto("a", 10, 1, 10)} // umbral default 2

	low := ledger.LowStock(products, 0)

	require.Len(t, low, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalValue — Σ precio * cantidad, sin redondeo
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalValue_SumaPrecioPorCantidad(t *testing.T) {
	products := []*entity.Product{
		producto("a", 50, 3, 40),   // 150
		producto("b", 100, 15, 50), // 1500
	}

	total := ledger.TotalValue(products)

	assert.True(t, total.Equal(decimal.NewFromInt(1650)), "esperado 1650, obtenido %s", total)
}

func TestTotalValue_InventarioVacioEsCero(t *testing.T) {
	total := ledger.TotalValue(nil)
	assert.True(t, total.IsZero())
}

func TestTotalValue_EsIdempotente(t *testing.T) {
	// Función pura: dos llamadas sobre el mismo snapshot dan el mismo resultado
	products := []*entity.Product{producto("a", 75, 8, 30)}

	first := ledger.TotalValue(products)
	second := ledger.TotalValue(products)

	assert.True(t, first.Equal(second))
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyMovementCounts — compara mes Y año
// ──────────────────────────────────────────────────────────────────────────────

func movimiento(tipo string, date time.Time) *entity.Movement {
	return &entity.Movement{
		ID:        "mov-" + date.Format("20060102"),
		ProductID: "a",
		Type:      tipo,
		Quantity:  1,
		Date:      date,
	}
}

func TestMonthlyMovementCounts_CuentaEntradasYSalidasDelMes(t *testing.T) {
	movements := []*entity.Movement{
		movimiento(entity.MovementTypeEntry, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		movimiento(entity.MovementTypeExit, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)),
	}
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	entries, exits := ledger.MonthlyMovementCounts(movements, ref)

	assert.Equal(t, 1, entries)
	assert.Equal(t, 1, exits)
}

func TestMonthlyMovementCounts_NoMezclaMismoMesDeOtroAnio(t *testing.T) {
	// Marzo 2024 no cuenta para marzo 2025
	movements := []*entity.Movement{
		movimiento(entity.MovementTypeEntry, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		movimiento(entity.MovementTypeEntry, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	entries, exits := ledger.MonthlyMovementCounts(movements, ref)

	assert.Equal(t, 1, entries)
	assert.Equal(t, 0, exits)
}

func TestMonthlyMovementCounts_IgnoraOtrosMeses(t *testing.T) {
	movements := []*entity.Movement{
		movimiento(entity.MovementTypeExit, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)),
		movimiento(entity.MovementTypeExit, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	}
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	entries, exits := ledger.MonthlyMovementCounts(movements, ref)

	assert.Equal(t, 0, entries)
	assert.Equal(t, 0, exits)
}
