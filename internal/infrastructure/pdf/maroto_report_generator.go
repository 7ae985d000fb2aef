// Package pdf implementa la representación gráfica del estado del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Período + Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos / Valor total / Stock bajo / Mov. mes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Exist. | Cap. | Precio | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total del inventario                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appanalytics "github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// Formateo de montos con separadores de miles en locale español.
var moneyPrinter = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appanalytics.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReportPDF(
	_ context.Context,
	summary *dto.DashboardSummaryDTO,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos
	m.AddRows(tableHeaderRow())
	lowStock := make(map[string]bool, len(summary.LowStock))
	for _, p := range summary.LowStock {
		lowStock[p.ID] = true
	}
	for _, r := range tableProductRows(products, lowStock) {
		m.AddRows(r)
	}

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(summary.TotalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período (der).
func headerRow(summary *dto.DashboardSummaryDTO) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Inventario Lite", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de estado del inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(summary.DateLabel, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}

// summaryRow: KPIs del dashboard en una franja.
func summaryRow(summary *dto.DashboardSummaryDTO) core.Row {
	kpi := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Color: valueColor}),
		)
	}
	lowColor := colorPrimary
	if summary.LowStockCount > 0 {
		lowColor = colorAlert
	}
	return row.New(13).Add(
		kpi("PRODUCTOS", fmt.Sprintf("%d", summary.TotalProducts), colorPrimary),
		kpi("VALOR TOTAL", "$"+formatMoney(summary.TotalValue), colorPrimary),
		kpi("STOCK BAJO", fmt.Sprintf("%d", summary.LowStockCount), lowColor),
		kpi("MOV. DEL MES", fmt.Sprintf("%d ent / %d sal", summary.MonthEntries, summary.MonthExits), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Exist.", 1, align.Center),
		h("Cap.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableProductRows: una fila por producto; los de stock bajo en rojo.
func tableProductRows(products []*entity.Product, lowStock map[string]bool) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		rowColor := (*props.Color)(nil)
		name := p.Name
		if lowStock[p.ID] {
			rowColor = colorAlert
			name += " (stock bajo)"
		}
		value := p.Price.Mul(decimal.NewFromInt(p.Quantity))
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: rowColor,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(name, 4, align.Left),
			cell(p.Category, 2, align.Left),
			cell(fmt.Sprintf("%d", p.Quantity), 1, align.Center),
			cell(fmt.Sprintf("%d", p.MaxStock), 1, align.Center),
			cell("$"+formatMoney(p.Price), 2, align.Right),
			cell("$"+formatMoney(value), 2, align.Right),
		))
	}
	return result
}

// totalRow: valor total del inventario alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("VALOR TOTAL DEL INVENTARIO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// formatMoney formatea un decimal con separadores de miles y dos decimales.
func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%.2f", d.InexactFloat64())
}
