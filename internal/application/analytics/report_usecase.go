package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// InventoryReportGenerator puerto para la representación gráfica (PDF) del
// estado del inventario. Implementado en infrastructure/pdf.
type InventoryReportGenerator interface {
	GenerateInventoryReportPDF(
		ctx context.Context,
		summary *dto.DashboardSummaryDTO,
		products []*entity.Product,
	) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del inventario: los mismos agregados
// del dashboard más la tabla completa de productos.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator InventoryReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator InventoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// GenerateInventoryReport arma el resumen y delega el render al generador.
// Devuelve los bytes del PDF.
func (uc *ReportUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.dashboard.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	return uc.generator.GenerateInventoryReportPDF(ctx, summary, products)
}
