package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dashboard"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
	apphttp "github.com/EdgarCaloch00/CrepePosApi/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para armar el use case detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubSalesRepo struct {
	queries atomic.Int64 // consultas de lectura recibidas
	failAll bool
}

func (s *stubSalesRepo) GetSalesSummary(context.Context, time.Time, time.Time, *string) (repository.SalesSummaryResult, error) {
	s.queries.Add(1)
	if s.failAll {
		return repository.SalesSummaryResult{}, errors.New("connection refused")
	}
	return repository.SalesSummaryResult{Total: decimal.RequireFromString("120.50"), Orders: 3, Units: 7}, nil
}

func (s *stubSalesRepo) GetTopProducts(context.Context, time.Time, time.Time, *string, int) ([]repository.RankedQuantityResult, error) {
	s.queries.Add(1)
	if s.failAll {
		return nil, errors.New("connection refused")
	}
	return []repository.RankedQuantityResult{{ID: "p1", Quantity: 4}}, nil
}

func (s *stubSalesRepo) GetTopCombos(context.Context, time.Time, time.Time, *string, int) ([]repository.RankedQuantityResult, error) {
	s.queries.Add(1)
	if s.failAll {
		return nil, errors.New("connection refused")
	}
	return nil, nil
}

func (s *stubSalesRepo) GetDailySales(context.Context, time.Time, time.Time, *string) ([]repository.DailySalesResult, error) {
	s.queries.Add(1)
	if s.failAll {
		return nil, errors.New("connection refused")
	}
	return nil, nil
}

func (s *stubSalesRepo) CreateSale(context.Context, *entity.Sale) error {
	panic("el dashboard no escribe ventas")
}

type stubCatalogRepo struct{}

func (stubCatalogRepo) ListProducts(context.Context) ([]repository.ProductWithType, error) {
	return nil, nil
}
func (stubCatalogRepo) GetProductByID(context.Context, string) (*entity.Product, error) {
	return nil, domain.ErrNotFound
}
func (stubCatalogRepo) GetComboByID(context.Context, string) (*entity.Combo, error) {
	return nil, domain.ErrNotFound
}
func (stubCatalogRepo) GetProductName(_ context.Context, id string) (string, error) {
	if id == "p1" {
		return "Crepa de Fresa", nil
	}
	return "", domain.ErrNotFound
}
func (stubCatalogRepo) GetComboName(context.Context, string) (string, error) {
	return "", domain.ErrNotFound
}

func newStatsApp(salesRepo *stubSalesRepo) *fiber.App {
	uc := dashboard.NewDashboardUseCase(salesRepo, stubCatalogRepo{}, dashboard.Options{
		TZOffsetHours:       -6,
		BranchFilterEnabled: true,
		Now: func() time.Time {
			return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		},
	})
	app := fiber.New()
	handler := apphttp.NewDashboardHandler(uc)
	app.Get("/api/dashboard/stats", handler.GetStats)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardStats_OK(t *testing.T) {
	app := newStatsApp(&stubSalesRepo{})

	req := httptest.NewRequest("GET", "/api/dashboard/stats?period=today", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats dto.DashboardStatsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))

	assert.Equal(t, "120.50", stats.TotalSales.Value)
	assert.Equal(t, int64(3), stats.Orders.Value)
	assert.Equal(t, int64(7), stats.ProductsSold.Value)
	assert.Equal(t, "2024-03-15", stats.Period.StartDate)

	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, "Crepa de Fresa", stats.TopProducts[0].Name)
	assert.Len(t, stats.DailySales, 7)
}

func TestDashboardStats_CustomSinEndDate_Regresa400(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	app := newStatsApp(salesRepo)

	req := httptest.NewRequest("GET", "/api/dashboard/stats?period=custom&startDate=2024-01-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_PERIOD", body.Code)
	assert.Contains(t, body.Message, "endDate")

	assert.Zero(t, salesRepo.queries.Load(), "un período inválido no debe tocar la DB")
}

func TestDashboardStats_PeriodDesconocido_Regresa400(t *testing.T) {
	app := newStatsApp(&stubSalesRepo{})

	req := httptest.NewRequest("GET", "/api/dashboard/stats?period=quarter", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Un fallo de DB regresa 500 con cuerpo fijo, sin filtrar el error interno.
func TestDashboardStats_ErrorDeDB_Regresa500ConCuerpoFijo(t *testing.T) {
	app := newStatsApp(&stubSalesRepo{failAll: true})

	req := httptest.NewRequest("GET", "/api/dashboard/stats?period=today", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to get dashboard stats"}`, string(raw))
	assert.NotContains(t, string(raw), "connection refused")
}
