// Package pdf genera el reporte de stock imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app        │  Título + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Mínimo | Actual | Estado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / itens en stock / bajos / críticos      │
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

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorLow      = &props.Color{Red: 200, Green: 130, Blue: 0}
	colorCritical = &props.Color{Red: 190, Green: 30, Blue: 30}
)

var statusLabels = map[entity.StockStatus]string{
	entity.StockNormal:   "Normal",
	entity.StockLow:      "Baixo",
	entity.StockCritical: "Crítico",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator genera el PDF del reporte de stock con Maroto v2.
type StockReportGenerator struct {
	appName string
}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator(appName string) *StockReportGenerator {
	return &StockReportGenerator{appName: appName}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) Generate(_ context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Produto", 6, align.Left),
		h("Mínimo", 2, align.Right),
		h("Atual", 2, align.Right),
		h("Status", 2, align.Center),
	)
}

func tableRows(products []entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		statusProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		switch p.Status {
		case entity.StockLow:
			statusProps.Color = colorLow
			statusProps.Style = fontstyle.Bold
		case entity.StockCritical:
			statusProps.Color = colorCritical
			statusProps.Style = fontstyle.Bold
		}
		name := p.Name
		if !p.Active {
			name += " (inativo)"
		}
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(analytics.FormatInt(p.MinimumStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(analytics.FormatInt(p.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(statusLabels[p.Status], statusProps)),
		))
	}
	return rows
}

func totalsRow(products []entity.Product) core.Row {
	var items, low, critical int
	for _, p := range products {
		items += p.CurrentStock
		switch p.Status {
		case entity.StockLow:
			low++
		case entity.StockCritical:
			critical++
		}
	}
	summary := fmt.Sprintf("%s produtos · %s itens em estoque · %d baixo · %d crítico",
		analytics.FormatInt(len(products)), analytics.FormatInt(items), low, critical)
	return row.New(10).Add(
		col.New(12).Add(text.New(summary, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
		})),
	)
}
