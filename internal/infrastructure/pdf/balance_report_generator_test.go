package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/pdf"
)

func TestGenerateBalanceReport(t *testing.T) {
	gen := pdf.NewBalanceReportGenerator("Trading Co")
	page := &dto.BalancePageDTO{
		Mode:  "debt",
		Title: "Debts",
		Statistics: dto.BalanceStatisticsDTO{
			CustomersCount: 1, TotalIQDFormatted: "1,000 IQD", TotalUSDFormatted: "0 $",
		},
		Customers: []dto.BalanceRowDTO{{
			ID: "1", Name: "Aram", FormattedIQD: "1,000 IQD", FormattedUSD: "0 $",
			ColorIQD: "negative", ColorUSD: "positive", LastTransactionRelative: "Today",
		}},
		Labels: map[string]string{"reports.customer": "Customer"},
	}

	out, err := gen.GenerateBalanceReport(context.Background(), ledger.BalanceReport{Page: page, GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateBalanceReport_ListadoVacio(t *testing.T) {
	gen := pdf.NewBalanceReportGenerator("Trading Co")
	page := &dto.BalancePageDTO{Mode: "advance", Title: "Advances", Labels: map[string]string{}}

	out, err := gen.GenerateBalanceReport(context.Background(), ledger.BalanceReport{Page: page, GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateBalanceReport_SinPagina(t *testing.T) {
	_, err := pdf.NewBalanceReportGenerator("x").GenerateBalanceReport(context.Background(), ledger.BalanceReport{})
	assert.Error(t, err)
}
