// Package balance contiene la lógica pura del listado de deudas y anticipos:
// clasificación de clientes por modo, formato de montos y fechas relativas.
// No hace I/O; los textos visibles llegan desde un Translator.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
)

// ColorClass categoría visual de un monto.
type ColorClass string

const (
	ColorPositive ColorClass = "positive" // favorable: anticipo o sin deuda
	ColorNegative ColorClass = "negative" // deuda pendiente del cliente
)

// Classify devuelve, en el mismo orden, los clientes relevantes al modo:
//   - debt:    BalanceIQD > 0 o BalanceUSD > 0
//   - advance: NegativeBalanceIQD > 0 o NegativeBalanceUSD > 0
//
// No modifica la entrada; con entrada vacía devuelve un slice vacío (no nil).
func Classify(customers []entity.CustomerBalance, mode entity.DisplayMode) []entity.CustomerBalance {
	out := make([]entity.CustomerBalance, 0, len(customers))
	for _, c := range customers {
		if Matches(c, mode) {
			out = append(out, c)
		}
	}
	return out
}

// Matches indica si el cliente pertenece al listado del modo dado.
func Matches(c entity.CustomerBalance, mode entity.DisplayMode) bool {
	if mode == entity.DisplayModeAdvance {
		return c.NegativeBalanceIQD.IsPositive() || c.NegativeBalanceUSD.IsPositive()
	}
	return c.BalanceIQD.IsPositive() || c.BalanceUSD.IsPositive()
}

// ClassifyColor: en modo advance siempre es positivo; en debt es negativo solo si amount > 0.
func ClassifyColor(amount decimal.Decimal, mode entity.DisplayMode) ColorClass {
	if mode == entity.DisplayModeAdvance {
		return ColorPositive
	}
	if amount.IsPositive() {
		return ColorNegative
	}
	return ColorPositive
}
