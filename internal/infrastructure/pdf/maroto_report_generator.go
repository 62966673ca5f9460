// Package pdf implementa el reporte imprimible de inventario para el
// operador de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sitio  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Mínimo | Estado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de referencias listadas                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	appinventory "github.com/tu-usuario/storefront-admin/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure MarotoReportGenerator implements inventory.ReportGenerator.
var _ appinventory.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	siteName string,
	generatedAt time.Time,
	items []appinventory.ReportItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(siteName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(siteName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sitio (izq) y fecha de generación (der).
func headerRow(siteName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(siteName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario actual", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(2).Add(text.New("Mínimo", headerRight)),
		col.New(2).Add(text.New("Estado", header)),
	)
}

func itemRow(item appinventory.ReportItem) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	statusCell := props.Text{Size: 8, Top: 1}
	if item.Status != "in_stock" {
		statusCell.Color = colorAlert
		statusCell.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(item.SKU, cell)),
		col.New(5).Add(text.New(item.Name, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Stock), cellRight)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.MinStockLevel), cellRight)),
		col.New(2).Add(text.New(statusLabel(item.Status), statusCell)),
	)
}

func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de referencias: %d", count), props.Text{
				Size: 9, Style: fontstyle.Bold, Top: 2, Align: align.Right,
			}),
		),
	)
}

func statusLabel(status string) string {
	switch status {
	case "out_of_stock":
		return "Agotado"
	case "low_stock":
		return "Stock bajo"
	default:
		return "Disponible"
	}
}
