package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayMode selecciona qué saldos se muestran en el listado de clientes.
type DisplayMode string

const (
	DisplayModeDebt    DisplayMode = "debt"    // el cliente le debe a la empresa
	DisplayModeAdvance DisplayMode = "advance" // la empresa le debe al cliente (anticipo/saldo a favor)
)

// Currency moneda de un saldo o filtro de moneda del listado.
type Currency string

const (
	CurrencyAll Currency = "all"
	CurrencyIQD Currency = "IQD"
	CurrencyUSD Currency = "USD"
)

// CustomerBalance saldo agregado de un cliente en cada moneda.
// Todos los campos están siempre presentes: teléfono vacío = "", sin fecha = nil.
type CustomerBalance struct {
	ID                  string
	Name                string
	Phone               string
	BalanceIQD          decimal.Decimal // deuda del cliente en dinares
	BalanceUSD          decimal.Decimal // deuda del cliente en dólares
	NegativeBalanceIQD  decimal.Decimal // anticipo del cliente en dinares
	NegativeBalanceUSD  decimal.Decimal // anticipo del cliente en dólares
	LastTransactionDate *time.Time
}

// Amount devuelve el saldo relevante al modo y la moneda indicados.
func (c CustomerBalance) Amount(mode DisplayMode, currency Currency) decimal.Decimal {
	if mode == DisplayModeAdvance {
		if currency == CurrencyUSD {
			return c.NegativeBalanceUSD
		}
		return c.NegativeBalanceIQD
	}
	if currency == CurrencyUSD {
		return c.BalanceUSD
	}
	return c.BalanceIQD
}

// FilterCriteria criterios del listado. Es un valor inmutable: se construye una vez
// por petición y se pasa explícitamente hasta la consulta.
type FilterCriteria struct {
	Search   string
	Currency Currency
	Mode     DisplayMode
}

// NewFilterCriteria normaliza la búsqueda (trim) y aplica los valores por defecto.
func NewFilterCriteria(search string, currency Currency, mode DisplayMode) FilterCriteria {
	if currency == "" {
		currency = CurrencyAll
	}
	if mode == "" {
		mode = DisplayModeDebt
	}
	return FilterCriteria{
		Search:   strings.TrimSpace(search),
		Currency: currency,
		Mode:     mode,
	}
}

// BalanceStatistics totales precalculados para las tarjetas del listado.
type BalanceStatistics struct {
	TotalIQD       decimal.Decimal
	TotalUSD       decimal.Decimal
	CustomersCount int
}
