package balance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/trade-ledger-api/internal/domain/balance"
	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
)

// mapTranslator diccionario mínimo en memoria para los tests.
type mapTranslator map[string]string

func (m mapTranslator) Get(key string, replace map[string]string) string {
	s, ok := m[key]
	if !ok {
		return key
	}
	for k, v := range replace {
		s = strings.ReplaceAll(s, ":"+k, v)
	}
	return s
}

var kurdish = mapTranslator{
	balance.KeyCurrencyIQD: "دینار",
	balance.KeyNoDate:      "no date",
	balance.KeyToday:       "today",
	balance.KeyYesterday:   "yesterday",
	balance.KeyDaysAgo:     ":count days ago",
	balance.KeyWeeksAgo:    ":count weeks ago",
	balance.KeyMonthsAgo:   ":count months ago",
	balance.KeyYearsAgo:    ":count years ago",
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newFormatter() *balance.Formatter {
	return balance.NewFormatter(kurdish, func() time.Time { return fixedNow })
}

func ago(dur time.Duration) *time.Time {
	t := fixedNow.Add(-dur)
	return &t
}

func TestFormatCurrency(t *testing.T) {
	f := newFormatter()

	assert.Equal(t, "1,234,567 دینار", f.FormatCurrency(decimal.NewFromInt(1234567), entity.CurrencyIQD))
	assert.Equal(t, "500 $", f.FormatCurrency(decimal.NewFromInt(500), entity.CurrencyUSD))
	assert.Equal(t, "0 $", f.FormatCurrency(decimal.Zero, entity.CurrencyUSD))
	assert.Equal(t, "0 دینار", f.FormatCurrency(decimal.Zero, entity.CurrencyIQD))
}

func TestFormatCurrency_IgnoraSigno(t *testing.T) {
	f := newFormatter()
	assert.Equal(t, "100 دینار", f.FormatCurrency(decimal.NewFromInt(-100), entity.CurrencyIQD))
	assert.Equal(t, "12,000 $", f.FormatCurrency(decimal.NewFromInt(-12000), entity.CurrencyUSD))
}

func TestFormatCurrency_MonedaDesconocida(t *testing.T) {
	f := newFormatter()
	assert.Equal(t, "1,500 EUR", f.FormatCurrency(decimal.NewFromInt(1500), entity.Currency("EUR")))
}

func TestFormatCurrency_MontosGrandes(t *testing.T) {
	f := newFormatter()
	assert.Equal(t, "12,345,678,901,234,567,890 دینار",
		f.FormatCurrency(decimal.RequireFromString("12345678901234567890"), entity.CurrencyIQD))
	assert.Equal(t, "98,765,432,109,876,543,210 $",
		f.FormatCurrency(decimal.RequireFromString("-98765432109876543210"), entity.CurrencyUSD))
}

func TestFormatCurrency_Fracciones(t *testing.T) {
	f := newFormatter()
	assert.Equal(t, "1,234.5 $", f.FormatCurrency(decimal.RequireFromString("1234.50"), entity.CurrencyUSD))
	assert.Equal(t, "0.125 $", f.FormatCurrency(decimal.RequireFromString("0.1254"), entity.CurrencyUSD))
	assert.Equal(t, "12,345,678,901,234,567.891 دینار",
		f.FormatCurrency(decimal.RequireFromString("12345678901234567.891"), entity.CurrencyIQD))
}

func TestFormatRelative_Buckets(t *testing.T) {
	f := newFormatter()
	day := 24 * time.Hour

	cases := []struct {
		name string
		ts   *time.Time
		want string
	}{
		{"sin fecha", nil, "no date"},
		{"ahora", ago(0), "today"},
		{"23h59m", ago(23*time.Hour + 59*time.Minute), "today"},
		{"25h", ago(25 * time.Hour), "yesterday"},
		{"2 días", ago(2 * day), "2 days ago"},
		{"6 días", ago(6*day + 23*time.Hour), "6 days ago"},
		{"7 días", ago(7 * day), "1 weeks ago"},
		{"10 días", ago(10 * day), "1 weeks ago"},
		{"29 días", ago(29 * day), "4 weeks ago"},
		{"30 días", ago(30 * day), "1 months ago"},
		{"364 días", ago(364 * day), "12 months ago"},
		{"365 días", ago(365 * day), "1 years ago"},
		{"800 días", ago(800 * day), "2 years ago"},
		{"futuro", ago(-3 * time.Hour), "today"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.FormatRelative(tc.ts))
		})
	}
}

// Un timestamp del día calendario anterior pero con menos de 24h sigue siendo "hoy".
func TestFormatRelative_NoEsDiaCalendario(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 30, 0, 0, time.UTC)
	f := balance.NewFormatter(kurdish, func() time.Time { return now })
	yesterdayEvening := time.Date(2026, 10, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "today", f.FormatRelative(&yesterdayEvening))
}

func TestFormatDate(t *testing.T) {
	f := newFormatter()
	ts := time.Date(2026, 3, 7, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "3/7/2026", f.FormatDate(&ts))
	assert.Equal(t, "no date", f.FormatDate(nil))
}
