package balance

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
)

// Claves de mensajes usadas por el formateador.
const (
	KeyCurrencyIQD = "balances.currency_iqd"
	KeyNoDate      = "balances.no_date"
	KeyToday       = "balances.today"
	KeyYesterday   = "balances.yesterday"
	KeyDaysAgo     = "balances.days_ago"
	KeyWeeksAgo    = "balances.weeks_ago"
	KeyMonthsAgo   = "balances.months_ago"
	KeyYearsAgo    = "balances.years_ago"
)

const (
	usdSuffix               = "$"
	maxFractionDigits int32 = 3
	msPerDay          int64 = 86_400_000
)

// Translator resuelve una clave de mensaje al texto del idioma activo.
// replace sustituye marcadores ":nombre" dentro del texto.
type Translator interface {
	Get(key string, replace map[string]string) string
}

// Formatter formatea montos y fechas para un idioma. Es inmutable y seguro
// para uso concurrente.
type Formatter struct {
	tr  Translator
	now func() time.Time
}

// NewFormatter construye el formateador. Si now es nil se usa time.Now.
func NewFormatter(tr Translator, now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{tr: tr, now: now}
}

// FormatCurrency formatea |amount| con separador de miles y sufijo de moneda.
// El signo lo agrega el llamador (prefijo "-" en anticipos).
func (f *Formatter) FormatCurrency(amount decimal.Decimal, currency entity.Currency) string {
	return groupDigits(amount.Abs()) + " " + f.currencySuffix(currency)
}

func (f *Formatter) currencySuffix(currency entity.Currency) string {
	switch currency {
	case entity.CurrencyIQD:
		return f.tr.Get(KeyCurrencyIQD, nil)
	case entity.CurrencyUSD:
		return usdSuffix
	default:
		return string(currency)
	}
}

// groupDigits agrupa miles con coma, independiente del idioma (1,234,567).
// Trabaja sobre los dígitos del decimal, sin pasar por int64 ni float64.
func groupDigits(v decimal.Decimal) string {
	intPart, frac, hasFrac := strings.Cut(v.Round(maxFractionDigits).String(), ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// FormatRelative describe hace cuánto ocurrió ts. Los días se calculan como
// floor(delta_ms / 86.400.000): "hoy" cubre cualquier lapso menor a 24h,
// no el mismo día calendario. Fechas futuras se muestran como "hoy".
func (f *Formatter) FormatRelative(ts *time.Time) string {
	if ts == nil {
		return f.tr.Get(KeyNoDate, nil)
	}
	days := floorDiv(f.now().Sub(*ts).Milliseconds(), msPerDay)
	switch {
	case days <= 0:
		return f.tr.Get(KeyToday, nil)
	case days == 1:
		return f.tr.Get(KeyYesterday, nil)
	case days < 7:
		return f.count(KeyDaysAgo, days)
	case days < 30:
		return f.count(KeyWeeksAgo, days/7)
	case days < 365:
		return f.count(KeyMonthsAgo, days/30)
	default:
		return f.count(KeyYearsAgo, days/365)
	}
}

// FormatDate fecha numérica M/D/YYYY en la zona propia del timestamp.
func (f *Formatter) FormatDate(ts *time.Time) string {
	if ts == nil {
		return f.tr.Get(KeyNoDate, nil)
	}
	return ts.Format("1/2/2006")
}

func (f *Formatter) count(key string, n int64) string {
	return f.tr.Get(key, map[string]string{"count": strconv.FormatInt(n, 10)})
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
