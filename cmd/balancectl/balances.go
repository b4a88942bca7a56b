package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
	"github.com/jhoicas/trade-ledger-api/internal/i18n"
	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/cache"
	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/trade-ledger-api/pkg/config"
	"github.com/jhoicas/trade-ledger-api/pkg/logger"
)

func newBalancesCmd() *cobra.Command {
	var (
		companyID string
		req       dto.BalancePageRequest
	)
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Lista clientes con deuda o anticipo",
		Example: `  balancectl balances --company 3f0c... --mode debt --currency IQD --lang ku
  balancectl balances --company 3f0c... --mode advance --search 0750`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if companyID == "" {
				return fmt.Errorf("--company es obligatorio")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: cmd.ErrOrStderr()})

			catalog, err := i18n.Load(cfg.Locale.Default)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := ledger.NewDebtAdvanceUseCase(
				postgres.NewCustomerBalanceRepository(pool), catalog,
				cache.NewTTLCache[string, entity.BalanceStatistics](0), nil, log,
			)
			page, err := uc.Page(ctx, companyID, req)
			if err != nil {
				return err
			}
			return printPage(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "UUID de la empresa")
	cmd.Flags().StringVar(&req.Mode, "mode", "debt", "debt | advance")
	cmd.Flags().StringVar(&req.Currency, "currency", "all", "all | IQD | USD")
	cmd.Flags().StringVar(&req.Search, "search", "", "nombre o teléfono")
	cmd.Flags().StringVar(&req.Lang, "lang", "", "ku | ar | en (vacío = LOCALE_DEFAULT)")
	return cmd
}

// printPage imprime el listado como tabla alineada.
func printPage(w io.Writer, page *dto.BalancePageDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n\n", page.Title)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		page.Labels["reports.customer"], page.Labels["reports.phone"],
		page.Labels["reports.balance_iqd"], page.Labels["reports.balance_usd"],
		page.Labels["reports.last_transaction"])
	for _, c := range page.Customers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Phone, c.FormattedIQD, c.FormattedUSD, c.LastTransactionRelative)
	}
	s := page.Statistics
	fmt.Fprintf(tw, "\n%s\t%s\n", page.Labels["reports.total_iqd"], s.TotalIQDFormatted)
	fmt.Fprintf(tw, "%s\t%s\n", page.Labels["reports.total_usd"], s.TotalUSDFormatted)
	fmt.Fprintf(tw, "%s\t%d\n", page.Labels["reports.customers_count"], s.CustomersCount)
	return tw.Flush()
}
