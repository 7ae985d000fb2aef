package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Visión general del inventario: totales, productos en stock bajo y conteo
// de movimientos del mes en curso.
type DashboardSummaryDTO struct {
	// Totales del inventario
	TotalProducts int             `json:"total_products"` // productos registrados
	TotalValue    decimal.Decimal `json:"total_value"`    // Σ precio * cantidad, redondeado a 2 decimales

	// Productos por debajo del 20% de su capacidad máxima
	LowStockCount int               `json:"low_stock_count"`
	LowStock      []ProductResponse `json:"low_stock"`

	// Movimientos del mes en curso (mismo mes y año)
	MonthEntries int `json:"month_entries"`
	MonthExits   int `json:"month_exits"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Marzo 2025"
}
