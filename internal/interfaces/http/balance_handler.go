package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
	"github.com/jhoicas/trade-ledger-api/internal/domain"
)

// BalanceHandler maneja el listado de deudas y anticipos de clientes (protegido).
type BalanceHandler struct {
	uc *ledger.DebtAdvanceUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(uc *ledger.DebtAdvanceUseCase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

// List godoc
// @Summary      Listado de deudas o anticipos
// @Tags         balances
// @Produce      json
// @Param        mode      query  string  false  "debt | advance"
// @Param        search    query  string  false  "nombre o teléfono"
// @Param        currency  query  string  false  "all | IQD | USD"
// @Param        lang      query  string  false  "ku | ar | en"
// @Success      200  {object}  dto.BalancePageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/balances [get]
func (h *BalanceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	req, err := parsePageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page, err := h.uc.Page(c.UserContext(), companyID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

// Statistics godoc
// @Summary      Totales del listado (total_iqd, total_usd, customers_count)
// @Tags         balances
// @Produce      json
// @Param        mode      query  string  false  "debt | advance"
// @Param        search    query  string  false  "nombre o teléfono"
// @Param        currency  query  string  false  "all | IQD | USD"
// @Param        lang      query  string  false  "ku | ar | en"
// @Success      200  {object}  dto.BalanceStatisticsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/balances/statistics [get]
func (h *BalanceHandler) Statistics(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	req, err := parsePageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	stats, err := h.uc.Statistics(c.UserContext(), companyID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// Report godoc
// @Summary      Reporte PDF del listado
// @Tags         balances
// @Produce      application/pdf
// @Param        mode      query  string  false  "debt | advance"
// @Param        search    query  string  false  "nombre o teléfono"
// @Param        currency  query  string  false  "all | IQD | USD"
// @Param        lang      query  string  false  "ku | ar | en"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/balances/report.pdf [get]
func (h *BalanceHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	req, err := parsePageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pdf, filename, err := h.uc.Report(c.UserContext(), companyID, req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// CustomerSummary godoc
// @Summary      Deuda y anticipo de un cliente
// @Tags         balances
// @Produce      json
// @Param        id    path   string  true   "UUID del cliente"
// @Param        lang  query  string  false  "ku | ar | en"
// @Success      200  {object}  dto.CustomerSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/balances/customers/{id} [get]
func (h *BalanceHandler) CustomerSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.CustomerSummary(c.UserContext(), companyID, c.Params("id"), langOf(c, c.Query("lang")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parsePageRequest lee los filtros de la query string; lang vacío toma el idioma del token.
func parsePageRequest(c *fiber.Ctx) (dto.BalancePageRequest, error) {
	var req dto.BalancePageRequest
	if err := c.QueryParser(&req); err != nil {
		return req, err
	}
	req.Lang = langOf(c, req.Lang)
	return req, nil
}

// langOf prioriza ?lang=, luego el idioma del token.
func langOf(c *fiber.Ctx, lang string) string {
	if lang != "" {
		return lang
	}
	return GetLocale(c)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token"})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser debt|advance, currency all|IQD|USD e id un UUID"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
