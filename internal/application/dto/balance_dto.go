package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalancePageRequest parámetros del listado de deudas/anticipos.
// Se leen de la query string para que el filtro sea compartible (bookmark).
type BalancePageRequest struct {
	Mode     string `query:"mode"`     // debt | advance (vacío = debt)
	Search   string `query:"search"`   // nombre o teléfono
	Currency string `query:"currency"` // all | IQD | USD (vacío = all)
	Lang     string `query:"lang"`     // ku | ar | en (vacío = idioma del token o por defecto)
}

// BalanceFiltersDTO filtros efectivos aplicados, devueltos para reconstruir la URL.
type BalanceFiltersDTO struct {
	Mode     string `json:"mode"`
	Search   string `json:"search"`
	Currency string `json:"currency"`
	Lang     string `json:"lang"`
}

// BalanceStatisticsDTO respuesta de GET /api/balances/statistics.
type BalanceStatisticsDTO struct {
	TotalIQD          decimal.Decimal `json:"total_iqd"`
	TotalUSD          decimal.Decimal `json:"total_usd"`
	CustomersCount    int             `json:"customers_count"`
	TotalIQDFormatted string          `json:"total_iqd_formatted"`
	TotalUSDFormatted string          `json:"total_usd_formatted"`
}

// BalanceRowDTO fila del listado ya formateada para la vista.
type BalanceRowDTO struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	Phone                   string          `json:"phone"`
	AmountIQD               decimal.Decimal `json:"amount_iqd"`
	AmountUSD               decimal.Decimal `json:"amount_usd"`
	FormattedIQD            string          `json:"formatted_iqd"` // con prefijo "-" en anticipos
	FormattedUSD            string          `json:"formatted_usd"`
	ColorIQD                string          `json:"color_iqd"` // positive | negative
	ColorUSD                string          `json:"color_usd"`
	LastTransactionAt       *time.Time      `json:"last_transaction_at"`
	LastTransactionRelative string          `json:"last_transaction_relative"`
	LastTransactionDate     string          `json:"last_transaction_date"`
}

// BalancePageDTO respuesta de GET /api/balances.
type BalancePageDTO struct {
	Mode       string               `json:"mode"`
	Locale     string               `json:"locale"`
	Direction  string               `json:"direction"` // rtl | ltr
	Title      string               `json:"title"`
	Filters    BalanceFiltersDTO    `json:"filters"`
	Statistics BalanceStatisticsDTO `json:"statistics"`
	Customers  []BalanceRowDTO      `json:"customers"`
	Labels     map[string]string    `json:"labels"`
}

// BalanceAmountsDTO montos de un modo para un cliente.
type BalanceAmountsDTO struct {
	AmountIQD    decimal.Decimal `json:"amount_iqd"`
	AmountUSD    decimal.Decimal `json:"amount_usd"`
	FormattedIQD string          `json:"formatted_iqd"`
	FormattedUSD string          `json:"formatted_usd"`
	HasBalance   bool            `json:"has_balance"`
}

// CustomerSummaryDTO respuesta de GET /api/balances/customers/:id.
type CustomerSummaryDTO struct {
	ID                      string            `json:"id"`
	Name                    string            `json:"name"`
	Phone                   string            `json:"phone"`
	Debt                    BalanceAmountsDTO `json:"debt"`
	Advance                 BalanceAmountsDTO `json:"advance"`
	LastTransactionRelative string            `json:"last_transaction_relative"`
	LastTransactionDate     string            `json:"last_transaction_date"`
}
