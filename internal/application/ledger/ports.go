package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/i18n"
)

// Localizer entrega el diccionario de textos de un idioma. Lo implementa *i18n.Catalog.
type Localizer interface {
	Dictionary(locale string) i18n.Dictionary
}

// BalanceReport datos ya formateados para el reporte imprimible del listado.
type BalanceReport struct {
	Page        *dto.BalancePageDTO
	GeneratedAt time.Time
}

// BalanceReportGenerator genera el PDF del listado de deudas o anticipos.
type BalanceReportGenerator interface {
	GenerateBalanceReport(ctx context.Context, report BalanceReport) ([]byte, error)
}
