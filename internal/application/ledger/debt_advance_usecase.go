package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/domain"
	"github.com/jhoicas/trade-ledger-api/internal/domain/balance"
	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
	"github.com/jhoicas/trade-ledger-api/internal/domain/repository"
	"github.com/jhoicas/trade-ledger-api/internal/i18n"
	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/cache"
	"github.com/jhoicas/trade-ledger-api/pkg/logger"
)

// Claves de textos de la página (además de las del formateador).
const (
	keyDebtsTitle    = "balances.debts_title"
	keyAdvancesTitle = "balances.advances_title"
)

// pageLabelKeys textos que la vista necesita para encabezados y tarjetas.
var pageLabelKeys = []string{
	"balances.search_placeholder",
	"balances.all_currencies",
	"balances.no_customers",
	"reports.customer",
	"reports.phone",
	"reports.balance_iqd",
	"reports.balance_usd",
	"reports.last_transaction",
	"reports.total_iqd",
	"reports.total_usd",
	"reports.customers_count",
	"reports.generated_at",
}

// DebtAdvanceUseCase arma el listado de deudas/anticipos de clientes:
// consulta saldos filtrados, los clasifica por modo y formatea montos y fechas
// en el idioma pedido.
type DebtAdvanceUseCase struct {
	repo      repository.CustomerBalanceRepository
	localizer Localizer
	stats     cache.Cache[string, entity.BalanceStatistics]
	report    BalanceReportGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewDebtAdvanceUseCase construye el caso de uso. report puede ser nil si no se exponen PDFs.
func NewDebtAdvanceUseCase(
	repo repository.CustomerBalanceRepository,
	localizer Localizer,
	stats cache.Cache[string, entity.BalanceStatistics],
	report BalanceReportGenerator,
	log *logger.Logger,
) *DebtAdvanceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DebtAdvanceUseCase{
		repo:      repo,
		localizer: localizer,
		stats:     stats,
		report:    report,
		log:       log.Component("ledger"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj usado para las fechas relativas (tests).
func (uc *DebtAdvanceUseCase) WithClock(now func() time.Time) *DebtAdvanceUseCase {
	uc.now = now
	return uc
}

// ParseCriteria valida mode y currency y normaliza la búsqueda.
// Retorna domain.ErrInvalidInput si algún valor no es reconocido.
func ParseCriteria(req dto.BalancePageRequest) (entity.FilterCriteria, error) {
	mode, err := entity.ParseDisplayMode(req.Mode)
	if err != nil {
		return entity.FilterCriteria{}, fmt.Errorf("mode %q: %w", req.Mode, err)
	}
	currency, err := entity.ParseCurrencyFilter(req.Currency)
	if err != nil {
		return entity.FilterCriteria{}, fmt.Errorf("currency %q: %w", req.Currency, err)
	}
	return entity.NewFilterCriteria(req.Search, currency, mode), nil
}

// Page devuelve el listado clasificado y formateado junto a las estadísticas.
func (uc *DebtAdvanceUseCase) Page(ctx context.Context, companyID string, req dto.BalancePageRequest) (*dto.BalancePageDTO, error) {
	criteria, err := ParseCriteria(req)
	if err != nil {
		return nil, err
	}
	dict := uc.localizer.Dictionary(req.Lang)

	// Listado y estadísticas en paralelo (consultas independientes).
	type listResult struct {
		rows []entity.CustomerBalance
		err  error
	}
	type statsResult struct {
		stats *entity.BalanceStatistics
		err   error
	}
	listChan := make(chan listResult, 1)
	statsChan := make(chan statsResult, 1)

	go func() {
		rows, err := uc.repo.ListBalances(ctx, companyID, criteria)
		listChan <- listResult{rows, err}
	}()
	go func() {
		s, err := uc.statistics(ctx, companyID, criteria)
		statsChan <- statsResult{s, err}
	}()

	listRes := <-listChan
	statsRes := <-statsChan
	if listRes.err != nil {
		return nil, fmt.Errorf("listado de saldos: %w", listRes.err)
	}
	if statsRes.err != nil {
		return nil, fmt.Errorf("estadísticas de saldos: %w", statsRes.err)
	}

	f := balance.NewFormatter(dict, uc.now)
	customers := balance.Classify(listRes.rows, criteria.Mode)
	rows := make([]dto.BalanceRowDTO, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, toRow(f, c, criteria.Mode))
	}

	uc.log.Debug().
		Str("company_id", companyID).
		Str("mode", string(criteria.Mode)).
		Str("currency", string(criteria.Currency)).
		Int("fetched", len(listRes.rows)).
		Int("shown", len(rows)).
		Msg("listado de saldos")

	return &dto.BalancePageDTO{
		Mode:      string(criteria.Mode),
		Locale:    dict.Locale(),
		Direction: direction(dict),
		Title:     dict.Get(titleKey(criteria.Mode), nil),
		Filters: dto.BalanceFiltersDTO{
			Mode:     string(criteria.Mode),
			Search:   criteria.Search,
			Currency: string(criteria.Currency),
			Lang:     dict.Locale(),
		},
		Statistics: toStatistics(f, statsRes.stats),
		Customers:  rows,
		Labels:     labels(dict),
	}, nil
}

// Statistics totales del modo seleccionado (cacheados por empresa y filtros).
func (uc *DebtAdvanceUseCase) Statistics(ctx context.Context, companyID string, req dto.BalancePageRequest) (*dto.BalanceStatisticsDTO, error) {
	criteria, err := ParseCriteria(req)
	if err != nil {
		return nil, err
	}
	s, err := uc.statistics(ctx, companyID, criteria)
	if err != nil {
		return nil, fmt.Errorf("estadísticas de saldos: %w", err)
	}
	out := toStatistics(balance.NewFormatter(uc.localizer.Dictionary(req.Lang), uc.now), s)
	return &out, nil
}

// CustomerSummary deuda y anticipo formateados de un cliente.
// Retorna domain.ErrInvalidInput si el id no es UUID y domain.ErrNotFound si no existe.
func (uc *DebtAdvanceUseCase) CustomerSummary(ctx context.Context, companyID, customerID, lang string) (*dto.CustomerSummaryDTO, error) {
	if _, err := uuid.Parse(customerID); err != nil {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("saldo de cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	f := balance.NewFormatter(uc.localizer.Dictionary(lang), uc.now)
	return &dto.CustomerSummaryDTO{
		ID:                      c.ID,
		Name:                    c.Name,
		Phone:                   c.Phone,
		Debt:                    amounts(f, *c, entity.DisplayModeDebt),
		Advance:                 amounts(f, *c, entity.DisplayModeAdvance),
		LastTransactionRelative: f.FormatRelative(c.LastTransactionDate),
		LastTransactionDate:     f.FormatDate(c.LastTransactionDate),
	}, nil
}

// Report genera el PDF del listado con los mismos filtros que Page.
func (uc *DebtAdvanceUseCase) Report(ctx context.Context, companyID string, req dto.BalancePageRequest) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("reporte PDF no configurado")
	}
	page, err := uc.Page(ctx, companyID, req)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdf, err := uc.report.GenerateBalanceReport(ctx, BalanceReport{Page: page, GeneratedAt: now})
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte: %w", err)
	}
	filename := fmt.Sprintf("%s-%s.pdf", page.Mode, now.Format("20060102"))
	return pdf, filename, nil
}

func (uc *DebtAdvanceUseCase) statistics(ctx context.Context, companyID string, criteria entity.FilterCriteria) (*entity.BalanceStatistics, error) {
	key := statsKey(companyID, criteria)
	if s, ok := uc.stats.Get(key); ok {
		return &s, nil
	}
	s, err := uc.repo.GetStatistics(ctx, companyID, criteria)
	if err != nil {
		return nil, err
	}
	uc.stats.Set(key, *s)
	return s, nil
}

func statsKey(companyID string, c entity.FilterCriteria) string {
	return companyID + "|" + string(c.Mode) + "|" + string(c.Currency) + "|" + c.Search
}

// toRow formatea una fila. En anticipos el monto lleva un "-" literal delante.
func toRow(f *balance.Formatter, c entity.CustomerBalance, mode entity.DisplayMode) dto.BalanceRowDTO {
	iqd := c.Amount(mode, entity.CurrencyIQD)
	usd := c.Amount(mode, entity.CurrencyUSD)
	return dto.BalanceRowDTO{
		ID:                      c.ID,
		Name:                    c.Name,
		Phone:                   c.Phone,
		AmountIQD:               iqd,
		AmountUSD:               usd,
		FormattedIQD:            signed(f, iqd, entity.CurrencyIQD, mode),
		FormattedUSD:            signed(f, usd, entity.CurrencyUSD, mode),
		ColorIQD:                string(balance.ClassifyColor(iqd, mode)),
		ColorUSD:                string(balance.ClassifyColor(usd, mode)),
		LastTransactionAt:       c.LastTransactionDate,
		LastTransactionRelative: f.FormatRelative(c.LastTransactionDate),
		LastTransactionDate:     f.FormatDate(c.LastTransactionDate),
	}
}

func signed(f *balance.Formatter, amount decimal.Decimal, currency entity.Currency, mode entity.DisplayMode) string {
	s := f.FormatCurrency(amount, currency)
	if mode == entity.DisplayModeAdvance && amount.IsPositive() {
		return "-" + s
	}
	return s
}

func amounts(f *balance.Formatter, c entity.CustomerBalance, mode entity.DisplayMode) dto.BalanceAmountsDTO {
	iqd := c.Amount(mode, entity.CurrencyIQD)
	usd := c.Amount(mode, entity.CurrencyUSD)
	return dto.BalanceAmountsDTO{
		AmountIQD:    iqd,
		AmountUSD:    usd,
		FormattedIQD: signed(f, iqd, entity.CurrencyIQD, mode),
		FormattedUSD: signed(f, usd, entity.CurrencyUSD, mode),
		HasBalance:   balance.Matches(c, mode),
	}
}

func toStatistics(f *balance.Formatter, s *entity.BalanceStatistics) dto.BalanceStatisticsDTO {
	return dto.BalanceStatisticsDTO{
		TotalIQD:          s.TotalIQD,
		TotalUSD:          s.TotalUSD,
		CustomersCount:    s.CustomersCount,
		TotalIQDFormatted: f.FormatCurrency(s.TotalIQD, entity.CurrencyIQD),
		TotalUSDFormatted: f.FormatCurrency(s.TotalUSD, entity.CurrencyUSD),
	}
}

func titleKey(mode entity.DisplayMode) string {
	if mode == entity.DisplayModeAdvance {
		return keyAdvancesTitle
	}
	return keyDebtsTitle
}

func direction(d i18n.Dictionary) string {
	if d.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

func labels(d i18n.Dictionary) map[string]string {
	out := make(map[string]string, len(pageLabelKeys))
	for _, k := range pageLabelKeys {
		out[k] = d.Get(k, nil)
	}
	return out
}
