// Package ledger contiene los servicios de dominio del libro de inventario:
// funciones puras que derivan agregados del snapshot actual de productos y
// movimientos. No tienen efectos secundarios ni acceden a persistencia.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// DefaultLowStockRatio fracción de MaxStock bajo la cual un producto se
// considera en stock bajo (20% de la capacidad).
const DefaultLowStockRatio = 0.2

// LowStock filtra los productos cuya existencia cayó por debajo de
// MaxStock * ratio. Preserva el orden de la colección de entrada.
// Regla: Quantity < MaxStock * ratio (estricto).
func LowStock(products []*entity.Product, ratio float64) []*entity.Product {
	if ratio <= 0 {
		ratio = DefaultLowStockRatio
	}
	r := decimal.NewFromFloat(ratio)
	var low []*entity.Product
	for _, p := range products {
		threshold := decimal.NewFromInt(p.MaxStock).Mul(r)
		if decimal.NewFromInt(p.Quantity).LessThan(threshold) {
			low = append(low, p)
		}
	}
	return low
}

// TotalValue calcula el valor total del inventario: Σ precio * cantidad.
// El resultado no se redondea; el redondeo a dos decimales es responsabilidad
// de la capa de presentación.
func TotalValue(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(p.Quantity)))
	}
	return total
}

// MonthlyMovementCounts cuenta entradas y salidas cuya fecha de negocio cae en
// el mismo mes Y año que ref. La comparación incluye el año: marzo 2025 y
// marzo 2024 no se mezclan.
//
// Es la definición de referencia del conteo mensual. El dashboard HTTP obtiene
// el mismo resultado vía SQL (AnalyticsRepository.GetMovementCounts) con un
// rango que cubre el mes calendario completo.
func MonthlyMovementCounts(movements []*entity.Movement, ref time.Time) (entries, exits int) {
	for _, m := range movements {
		if m.Date.Year() != ref.Year() || m.Date.Month() != ref.Month() {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntry:
			entries++
		case entity.MovementTypeExit:
			exits++
		}
	}
	return entries, exits
}
