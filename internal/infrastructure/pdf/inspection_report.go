// Package pdf implementa la generación del reporte imprimible de una
// inspección de calidad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + título  │  N° Inspección + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOTE: Batch / Producto / SKU / Inspector                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CHECKLIST por categoría: Criterio | Resultado | Notas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: Puntaje 0-100 + estado global                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	appquality "github.com/jhoicas/Planta-core/internal/application/quality"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPass    = &props.Color{Red: 22, Green: 128, Blue: 57}
	colorFail    = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// InspectionReportGenerator implementa quality.ReportGenerator usando Maroto v2.
type InspectionReportGenerator struct{}

// NewInspectionReportGenerator construye el generador.
func NewInspectionReportGenerator() *InspectionReportGenerator { return &InspectionReportGenerator{} }

var _ appquality.ReportGenerator = (*InspectionReportGenerator)(nil)

// GenerateInspectionPDF genera el PDF del reporte y devuelve sus bytes.
func (g *InspectionReportGenerator) GenerateInspectionPDF(inspection *entity.Inspection, plantName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Quality Inspection Report", true).
		WithAuthor(plantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inspection, plantName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(batchRow(inspection))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, group := range appquality.GroupByCategory(inspection.Items) {
		m.AddRows(categoryRow(group.Category))
		for _, r := range itemRows(group.Items) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resultRow(inspection))

	if inspection.OverallNotes != "" {
		m.AddRows(notesRow(inspection.OverallNotes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: planta + título (izq) y N° de inspección + fecha (der).
func headerRow(inspection *entity.Inspection, plantName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(plantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Quality Inspection Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(inspection.ID, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+inspection.Date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// batchRow: datos del lote inspeccionado.
func batchRow(inspection *entity.Inspection) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("LOTE INSPECCIONADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %s", inspection.BatchID, inspection.Product), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("SKU: %s   |   Inspector: %s",
				inspection.SKU, inspection.Inspector,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// categoryRow: subtítulo de una categoría del checklist.
func categoryRow(category string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(strings.ToUpper(category), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// itemRows: una fila por criterio, con resultado coloreado.
func itemRows(items []entity.InspectionItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(
				it.Label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 2},
			)),
			col.New(2).Add(text.New(
				strings.ToUpper(string(it.Status)),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor(it.Status)},
			)),
			col.New(3).Add(text.New(
				it.Notes,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// resultRow: puntaje y resultado global.
func resultRow(inspection *entity.Inspection) core.Row {
	resultColor := colorPass
	if inspection.Status == entity.InspectionFail {
		resultColor = colorFail
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("RESULTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Score: %d / 100", inspection.Score), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
		),
		col.New(6).Add(
			text.New(string(inspection.Status), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: resultColor, Top: 5,
			}),
		),
	)
}

// notesRow: observaciones generales del inspector.
func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Observaciones:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
	))
}

func statusColor(s entity.ItemStatus) *props.Color {
	switch s {
	case entity.ItemPass:
		return colorPass
	case entity.ItemFail:
		return colorFail
	default:
		return colorGray
	}
}
