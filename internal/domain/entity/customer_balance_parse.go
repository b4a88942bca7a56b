package entity

import (
	"strings"

	"github.com/jhoicas/trade-ledger-api/internal/domain"
)

// ParseDisplayMode interpreta el parámetro "mode". Vacío = debt.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(DisplayModeDebt):
		return DisplayModeDebt, nil
	case string(DisplayModeAdvance):
		return DisplayModeAdvance, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// ParseCurrencyFilter interpreta el parámetro "currency". Vacío = all.
func ParseCurrencyFilter(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ALL":
		return CurrencyAll, nil
	case string(CurrencyIQD):
		return CurrencyIQD, nil
	case string(CurrencyUSD):
		return CurrencyUSD, nil
	default:
		return "", domain.ErrInvalidInput
	}
}
