package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BalanceUC *ledger.DebtAdvanceUseCase
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	balances := api.Group("/balances")
	balanceHandler := NewBalanceHandler(deps.BalanceUC)
	balances.Get("/", balanceHandler.List)
	balances.Get("/statistics", balanceHandler.Statistics)
	balances.Get("/report.pdf", balanceHandler.Report)
	balances.Get("/customers/:id", balanceHandler.CustomerSummary)
}
