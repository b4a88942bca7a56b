// Package pdf genera el reporte imprimible del listado de deudas o anticipos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título (Deudas / Anticipos)   │  Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Total IQD │ Total USD │ Cantidad de clientes       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Teléfono | IQD | USD | Última transacción  │
//	└─────────────────────────────────────────────────────────────┘
//
// Los fuentes core de PDF no incluyen glifos árabes; para ku/ar se debe
// registrar una fuente TTF con config.Builder.WithCustomFonts.
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

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
)

var _ ledger.BalanceReportGenerator = (*BalanceReportGenerator)(nil)

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorNegative = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorPositive = &props.Color{Red: 21, Green: 128, Blue: 61}
)

// BalanceReportGenerator implementa ledger.BalanceReportGenerator con Maroto v2.
type BalanceReportGenerator struct {
	companyName string
}

// NewBalanceReportGenerator construye el generador; companyName va como autor del PDF.
func NewBalanceReportGenerator(companyName string) *BalanceReportGenerator {
	return &BalanceReportGenerator{companyName: companyName}
}

// GenerateBalanceReport genera el PDF y devuelve sus bytes.
func (g *BalanceReportGenerator) GenerateBalanceReport(_ context.Context, report ledger.BalanceReport) ([]byte, error) {
	page := report.Page
	if page == nil {
		return nil, fmt.Errorf("pdf: reporte sin datos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(page.Title, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(page, report.GeneratedAt.Format("2006-01-02 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statisticsRow(page))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(page.Labels))
	m.AddRows(tableRows(page.Customers, page.Labels)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(page *dto.BalancePageDTO, generatedAt string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(page.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(page.Labels["reports.generated_at"], props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(generatedAt, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func statisticsRow(page *dto.BalancePageDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	s := page.Statistics
	return row.New(14).Add(
		card(page.Labels["reports.total_iqd"], s.TotalIQDFormatted),
		card(page.Labels["reports.total_usd"], s.TotalUSDFormatted),
		card(page.Labels["reports.customers_count"], fmt.Sprintf("%d", s.CustomersCount)),
	)
}

func tableHeaderRow(labels map[string]string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(labels["reports.customer"], 3, align.Left),
		h(labels["reports.phone"], 2, align.Left),
		h(labels["reports.balance_iqd"], 2, align.Right),
		h(labels["reports.balance_usd"], 2, align.Right),
		h(labels["reports.last_transaction"], 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(customers []dto.BalanceRowDTO, labels map[string]string) []core.Row {
	if len(customers) == 0 {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(labels["balances.no_customers"], props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		))}
	}
	rows := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, row.New(7).Add(
			col.New(3).Add(text.New(c.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(c.Phone, "—"), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(c.FormattedIQD, props.Text{Size: 8, Top: 1, Align: align.Right, Color: toneColor(c.ColorIQD)})),
			col.New(2).Add(text.New(c.FormattedUSD, props.Text{Size: 8, Top: 1, Align: align.Right, Color: toneColor(c.ColorUSD)})),
			col.New(3).Add(text.New(c.LastTransactionRelative, props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func toneColor(tone string) *props.Color {
	if tone == "negative" {
		return colorNegative
	}
	return colorPositive
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
