// Package analytics contiene el caso de uso del Dashboard: agregados
// derivados del snapshot actual de productos y movimientos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/ledger"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario y del mes en curso.
//
// Fuente de datos: ProductRepository (snapshot completo) y
// AnalyticsRepository (conteo de movimientos, read-only). No mantiene caché:
// cada llamada relee el estado actual.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
	lowStockRatio float64
}

// NewDashboardUseCase construye el caso de uso. ratio <= 0 usa el 20% por defecto.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
	lowStockRatio float64,
) *DashboardUseCase {
	if lowStockRatio <= 0 {
		lowStockRatio = ledger.DefaultLowStockRatio
	}
	return &DashboardUseCase{
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		lowStockRatio: lowStockRatio,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. ListAll()                → total de productos, stock bajo, valor total
//  2. GetMovementCounts(mes)   → entradas y salidas del mes en curso
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes calendario completo: día 1 a las 00:00 – último instante del mes.
	// La fecha de negocio la pone el cliente y puede caer más adelante en el
	// mes; el rango acota además mes Y año: marzo 2025 no cuenta marzo 2024.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type countsResult struct {
		counts repository.MonthlyMovementCounts
		err    error
	}

	productsCh := make(chan productsResult, 1)
	countsCh := make(chan countsResult, 1)

	go func() {
		list, err := uc.productRepo.ListAll()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.GetMovementCounts(ctx, monthStart, monthEnd)
		countsCh <- countsResult{counts, err}
	}()

	products := <-productsCh
	counts := <-countsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", counts.err)
	}

	return uc.buildSummary(products.products, counts.counts, now), nil
}

// buildSummary deriva los agregados con los servicios de dominio puros.
func (uc *DashboardUseCase) buildSummary(
	products []*entity.Product,
	counts repository.MonthlyMovementCounts,
	now time.Time,
) *dto.DashboardSummaryDTO {
	low := ledger.LowStock(products, uc.lowStockRatio)
	lowItems := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		lowItems = append(lowItems, dto.ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
			Quantity:  p.Quantity,
			MaxStock:  p.MaxStock,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: len(products),
		TotalValue:    ledger.TotalValue(products).Round(2),
		LowStockCount: len(lowItems),
		LowStock:      lowItems,
		MonthEntries:  counts.Entries,
		MonthExits:    counts.Exits,
		DateLabel:     monthLabel(now),
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Marzo 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
