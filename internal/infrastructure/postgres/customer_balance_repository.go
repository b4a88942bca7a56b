package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
	"github.com/jhoicas/trade-ledger-api/internal/domain/repository"
)

var _ repository.CustomerBalanceRepository = (*CustomerBalanceRepo)(nil)

const balanceColumns = `id, name, COALESCE(phone, ''), balance_iqd, balance_usd,
		negative_balance_iqd, negative_balance_usd, last_transaction_date`

// CustomerBalanceRepo implementación de CustomerBalanceRepository sobre la tabla customers.
type CustomerBalanceRepo struct {
	q Querier
}

// NewCustomerBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerBalanceRepository(q Querier) *CustomerBalanceRepo {
	return &CustomerBalanceRepo{q: q}
}

// ListBalances lista saldos de la empresa con los filtros de búsqueda y moneda.
func (r *CustomerBalanceRepo) ListBalances(ctx context.Context, companyID string, criteria entity.FilterCriteria) ([]entity.CustomerBalance, error) {
	where, args := buildBalanceWhere(companyID, criteria)
	query := `SELECT ` + balanceColumns + ` FROM customers WHERE ` + where + ` ORDER BY name, id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer balances: %w", err)
	}
	defer rows.Close()
	list := make([]entity.CustomerBalance, 0)
	for rows.Next() {
		c, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer balance: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetStatistics suma las columnas del modo (deuda o anticipo) y cuenta los clientes con saldo.
func (r *CustomerBalanceRepo) GetStatistics(ctx context.Context, companyID string, criteria entity.FilterCriteria) (*entity.BalanceStatistics, error) {
	iqd, usd := modeColumns(criteria.Mode)
	where, args := buildBalanceWhere(companyID, criteria)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%[1]s), 0), COALESCE(SUM(%[2]s), 0),
		       COUNT(*) FILTER (WHERE %[1]s > 0 OR %[2]s > 0)
		FROM customers WHERE %[3]s`, iqd, usd, where)
	var s entity.BalanceStatistics
	if err := r.q.QueryRow(ctx, query, args...).Scan(&s.TotalIQD, &s.TotalUSD, &s.CustomersCount); err != nil {
		return nil, fmt.Errorf("customer balance statistics: %w", err)
	}
	return &s, nil
}

// GetByID obtiene el saldo de un cliente de la empresa.
func (r *CustomerBalanceRepo) GetByID(ctx context.Context, companyID, customerID string) (*entity.CustomerBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM customers WHERE company_id = $1 AND id = $2`
	c, err := scanBalance(r.q.QueryRow(ctx, query, companyID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer balance: %w", err)
	}
	return &c, nil
}

func scanBalance(row pgx.Row) (entity.CustomerBalance, error) {
	var (
		c    entity.CustomerBalance
		last *time.Time
	)
	var iqd, usd, negIQD, negUSD decimal.NullDecimal
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &iqd, &usd, &negIQD, &negUSD, &last); err != nil {
		return c, err
	}
	c.BalanceIQD = iqd.Decimal
	c.BalanceUSD = usd.Decimal
	c.NegativeBalanceIQD = negIQD.Decimal
	c.NegativeBalanceUSD = negUSD.Decimal
	c.LastTransactionDate = last
	return c, nil
}

// modeColumns columnas IQD/USD que aplican al modo.
func modeColumns(mode entity.DisplayMode) (iqd, usd string) {
	if mode == entity.DisplayModeAdvance {
		return "negative_balance_iqd", "negative_balance_usd"
	}
	return "balance_iqd", "balance_usd"
}

// buildBalanceWhere arma la cláusula WHERE y sus argumentos posicionales.
// La búsqueda es ILIKE sobre nombre y teléfono; el filtro de moneda exige
// saldo positivo en la columna de esa moneda para el modo activo.
func buildBalanceWhere(companyID string, criteria entity.FilterCriteria) (string, []any) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}

	if criteria.Search != "" {
		args = append(args, "%"+escapeLike(criteria.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d)", n, n))
	}

	iqd, usd := modeColumns(criteria.Mode)
	switch criteria.Currency {
	case entity.CurrencyIQD:
		conds = append(conds, iqd+" > 0")
	case entity.CurrencyUSD:
		conds = append(conds, usd+" > 0")
	}
	return strings.Join(conds, " AND "), args
}
