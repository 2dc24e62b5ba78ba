// Package pdf implementa la generación del reporte PDF de gastos con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + divisa base  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Categoría | Descripción | Monto | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: total aprobado / total pendiente                  │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ ports.ExpenseReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ExpenseReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateExpenseReport genera el PDF del reporte de gastos y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpenseReport(
	_ context.Context,
	companyName, currency string,
	expenses []dto.ExpenseResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Gastos", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, currency))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableExpenseRows(expenses) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(currency, expenses))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + divisa base (izq) y fecha de generación (der).
func headerRow(companyName, currency string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Divisa base: "+currency, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE GASTOS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de gastos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Categoría", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Monto", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableExpenseRows: una fila por gasto, monto en la divisa base de la empresa.
func tableExpenseRows(expenses []dto.ExpenseResponse) []core.Row {
	result := make([]core.Row, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.ConvertedAmount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				e.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor(e.Status)},
			)),
		))
	}
	return result
}

// totalsRow: totales aprobado y pendiente alineados a la derecha.
func totalsRow(currency string, expenses []dto.ExpenseResponse) core.Row {
	var approved, pending decimal.Decimal
	for _, e := range expenses {
		switch e.Status {
		case entity.StatusApproved:
			approved = approved.Add(e.ConvertedAmount)
		case entity.StatusPending:
			pending = pending.Add(e.ConvertedAmount)
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total aprobado: %s %s", approved.StringFixed(2), currency), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorGreen, Top: 2, Right: 1,
			}),
			text.New(fmt.Sprintf("Total pendiente: %s %s", pending.StringFixed(2), currency), props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 9, Right: 1,
			}),
		),
	)
}

func statusColor(status string) *props.Color {
	switch status {
	case entity.StatusApproved:
		return colorGreen
	case entity.StatusRejected:
		return colorRed
	default:
		return colorGray
	}
}
