package repository

import (
	"context"

	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
)

// CustomerBalanceRepository puerto de lectura de saldos de clientes.
// Los saldos los calcula y persiste el backend de ventas/pagos; aquí solo se consultan.
type CustomerBalanceRepository interface {
	// ListBalances devuelve los saldos filtrados por búsqueda (nombre/teléfono) y moneda,
	// ordenados por nombre.
	ListBalances(ctx context.Context, companyID string, criteria entity.FilterCriteria) ([]entity.CustomerBalance, error)

	// GetStatistics totales del modo seleccionado con los mismos filtros del listado.
	GetStatistics(ctx context.Context, companyID string, criteria entity.FilterCriteria) (*entity.BalanceStatistics, error)

	// GetByID devuelve el saldo de un cliente, o nil si no existe en la empresa.
	GetByID(ctx context.Context, companyID, customerID string) (*entity.CustomerBalance, error)
}
