package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trade-ledger-api/internal/application/dto"
	"github.com/jhoicas/trade-ledger-api/internal/application/ledger"
	"github.com/jhoicas/trade-ledger-api/internal/domain/entity"
	"github.com/jhoicas/trade-ledger-api/internal/i18n"
	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/trade-ledger-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/trade-ledger-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "auth-backend"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCompanyID  = "00000000-0000-0000-0000-000000000002"
	testCustomerID = "6f1c2d3e-4a5b-4c6d-8e7f-901234567890"
)

type memoryRepo struct {
	rows []entity.CustomerBalance
}

func (r memoryRepo) ListBalances(_ context.Context, companyID string, _ entity.FilterCriteria) ([]entity.CustomerBalance, error) {
	if companyID != testCompanyID {
		return nil, nil
	}
	return r.rows, nil
}

func (r memoryRepo) GetStatistics(_ context.Context, _ string, _ entity.FilterCriteria) (*entity.BalanceStatistics, error) {
	return &entity.BalanceStatistics{TotalIQD: decimal.NewFromInt(75000), CustomersCount: 1}, nil
}

func (r memoryRepo) GetByID(_ context.Context, _, id string) (*entity.CustomerBalance, error) {
	for _, c := range r.rows {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

type stubReport struct{}

func (stubReport) GenerateBalanceReport(context.Context, ledger.BalanceReport) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := i18n.Load("ku")
	require.NoError(t, err)
	repo := memoryRepo{rows: []entity.CustomerBalance{
		{ID: testCustomerID, Name: "Aram", BalanceIQD: decimal.NewFromInt(75000)},
		{ID: "b", Name: "Bawan", NegativeBalanceUSD: decimal.NewFromInt(20)},
	}}
	uc := ledger.NewDebtAdvanceUseCase(repo, cat,
		cache.NewTTLCache[string, entity.BalanceStatistics](0), stubReport{}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{BalanceUC: uc, JWTSecret: testJWTSecret, JWTIssuer: testIssuer})
	return app
}

func bearer(t *testing.T, locale string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, locale, testIssuer, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestBalances_SinToken_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestBalances_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	resp := doGet(t, app, "/api/balances", "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doGet(t, app, "/api/balances", "Basic abc")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestBalances_ModoDeuda_IdiomaDelToken(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances?mode=debt", bearer(t, "ar"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.BalancePageDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "ar", page.Locale)
	assert.Equal(t, "الديون", page.Title)
	require.Len(t, page.Customers, 1)
	assert.Equal(t, "75,000 دينار", page.Customers[0].FormattedIQD)
	assert.Equal(t, "negative", page.Customers[0].ColorIQD)
}

func TestBalances_ModoAnticipo_LangQueryPrioriza(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances?mode=advance&lang=en", bearer(t, "ar"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.BalancePageDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "en", page.Locale)
	assert.Equal(t, "ltr", page.Direction)
	require.Len(t, page.Customers, 1)
	assert.Equal(t, "-20 $", page.Customers[0].FormattedUSD)
}

func TestBalances_ModoInvalido_Retorna400(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances?mode=owed", bearer(t, ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestBalances_Statistics(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances/statistics?lang=en", bearer(t, ""))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.BalanceStatisticsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.CustomersCount)
	assert.Equal(t, "75,000 IQD", stats.TotalIQDFormatted)
}

func TestBalances_ReportePDF(t *testing.T) {
	resp := doGet(t, buildTestApp(t), "/api/balances/report.pdf?mode=advance", bearer(t, ""))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "advance-")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen por cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerSummary_Codigos(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t, "en")

	resp := doGet(t, app, "/api/balances/customers/"+testCustomerID, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CustomerSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Aram", out.Name)
	assert.True(t, out.Debt.HasBalance)
	assert.Equal(t, "No date", out.LastTransactionRelative)

	resp2 := doGet(t, app, "/api/balances/customers/no-uuid", auth)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	resp3 := doGet(t, app, "/api/balances/customers/11111111-2222-3333-4444-555555555555", auth)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}
