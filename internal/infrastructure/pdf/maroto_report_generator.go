// Package pdf implementa la generación del reporte de niveles de stock
// en formato PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total ítems | En alerta | Críticos                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Actual | Mínimo | Estado | Bodega    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Leyenda de estados                                 │
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

	"github.com/tu-usuario/stock-monitor/internal/application/report"
	"github.com/tu-usuario/stock-monitor/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning  = &props.Color{Red: 180, Green: 130, Blue: 0}
	colorCritical = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorNormal   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReportPDF(
	_ context.Context,
	rows []report.StockLevelRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Niveles de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(time.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(legendRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE NIVELES DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de materia prima", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteo de ítems por estado.
func summaryRow(rows []report.StockLevelRow) core.Row {
	var warning, critical int
	for _, r := range rows {
		switch stock.Status(r.Status) {
		case stock.StatusWarning:
			warning++
		case stock.StatusCritical:
			critical++
		}
	}

	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6, Color: color,
			}),
		)
	}
	return row.New(14).Add(
		cell("Total de ítems", fmt.Sprintf("%d", len(rows)), colorPrimary),
		cell("En advertencia", fmt.Sprintf("%d", warning), colorWarning),
		cell("Críticos", fmt.Sprintf("%d", critical), colorCritical),
	)
}

// tableHeaderRow: cabecera de la tabla de niveles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Actual", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Estado", 1, align.Center),
		h("Bodega", 2, align.Left),
	)
}

// tableRows: una fila por ítem, con el estado coloreado.
func tableRows(rows []report.StockLevelRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.CurrentQuantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.MinQuantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				statusLabel(stock.Status(r.Status)),
				props.Text{
					Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1,
					Color: statusColor(stock.Status(r.Status)),
				},
			)),
			col.New(2).Add(text.New(
				nonEmpty(r.Warehouse, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// legendRow: leyenda de los tres estados al pie del reporte.
func legendRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"OK: por encima del umbral de advertencia   |   "+
				"BAJO: en o por debajo de 1.5 veces el mínimo   |   "+
				"AGOTADO: sin existencias.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s stock.Status) string {
	switch s {
	case stock.StatusCritical:
		return "AGOTADO"
	case stock.StatusWarning:
		return "BAJO"
	default:
		return "OK"
	}
}

func statusColor(s stock.Status) *props.Color {
	switch s {
	case stock.StatusCritical:
		return colorCritical
	case stock.StatusWarning:
		return colorWarning
	default:
		return colorNormal
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
