// Package pdf exporta los reportes de recaudo a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte    │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por registro                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: registros + suma de la columna de dinero           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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

	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	"github.com/jhoicas/recaudo-api/internal/domain/entity"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// column encabezado y ancho (sobre 12) de una columna de la tabla.
type column struct {
	label string
	size  int
	align align.Type
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportPDFGenerator.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// TotalPaidPDF reporte de total pagado por cliente.
func (g *MarotoReportGenerator) TotalPaidPDF(_ context.Context, rows []entity.TotalPaidRow, generatedAt time.Time) ([]byte, error) {
	cols := []column{
		{"ID", 1, align.Center},
		{"Cliente", 5, align.Left},
		{"Identificación", 3, align.Left},
		{"Total pagado", 3, align.Right},
	}
	total := decimal.Zero
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.TotalPaid)
		cells = append(cells, []string{
			strconv.FormatInt(r.CustomerID, 10),
			r.Name,
			r.IdentificationNumber,
			"$" + formatMoney(r.TotalPaid),
		})
	}
	return g.render("Total pagado por cliente", generatedAt, cols, cells, len(rows), total)
}

// PendingInvoicesPDF reporte de facturas con saldo pendiente.
func (g *MarotoReportGenerator) PendingInvoicesPDF(_ context.Context, rows []entity.PendingInvoiceRow, generatedAt time.Time) ([]byte, error) {
	cols := []column{
		{"Factura", 2, align.Left},
		{"Período", 1, align.Center},
		{"Cliente", 3, align.Left},
		{"Facturado", 2, align.Right},
		{"Pagado", 2, align.Right},
		{"Saldo", 2, align.Right},
	}
	total := decimal.Zero
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.Balance)
		cells = append(cells, []string{
			r.InvoiceNumber,
			r.BillingPeriod,
			r.CustomerName,
			"$" + formatMoney(r.AmountBilled),
			"$" + formatMoney(r.TotalPaid),
			"$" + formatMoney(r.Balance),
		})
	}
	return g.render("Facturas pendientes", generatedAt, cols, cells, len(rows), total)
}

func (g *MarotoReportGenerator) render(
	title string,
	generatedAt time.Time,
	cols []column,
	cells [][]string,
	count int,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(g.author, "recaudo-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(cols))
	m.AddRows(tableRows(cols, cells)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(count, total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por registro, con fondo alterno.
func tableRows(cols []column, cells [][]string) []core.Row {
	if len(cells) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin registros", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(cells))
	for i, rec := range cells {
		out := make([]core.Col, 0, len(cols))
		for j, c := range cols {
			out = append(out, col.New(c.size).Add(text.New(rec[j], props.Text{
				Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(6).Add(out...)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

func totalsRow(count int, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Registros: %d", count), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		})),
		col.New(6).Add(text.New("TOTAL: $"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato colombiano: puntos de miles y coma decimal.
// Ej: 1500 → "1.500,00", -25000.5 → "-25.000,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, frac...)
	return string(buf)
}
