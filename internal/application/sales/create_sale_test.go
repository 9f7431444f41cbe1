package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/sales"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: el TxRunner ejecuta fn directo, sin transacción real
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	salesRepo   repository.SalesRepository
	catalogRepo repository.CatalogRepository
	runs        int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	salesRepo repository.SalesRepository,
	catalogRepo repository.CatalogRepository,
) error) error {
	f.runs++
	return fn(f.salesRepo, f.catalogRepo)
}

type capturingSalesRepo struct {
	saved *entity.Sale
	err   error
}

func (c *capturingSalesRepo) CreateSale(_ context.Context, sale *entity.Sale) error {
	if c.err != nil {
		return c.err
	}
	c.saved = sale
	return nil
}

func (c *capturingSalesRepo) GetSalesSummary(context.Context, time.Time, time.Time, *string) (repository.SalesSummaryResult, error) {
	panic("no se usa en checkout")
}
func (c *capturingSalesRepo) GetTopProducts(context.Context, time.Time, time.Time, *string, int) ([]repository.RankedQuantityResult, error) {
	panic("no se usa en checkout")
}
func (c *capturingSalesRepo) GetTopCombos(context.Context, time.Time, time.Time, *string, int) ([]repository.RankedQuantityResult, error) {
	panic("no se usa en checkout")
}
func (c *capturingSalesRepo) GetDailySales(context.Context, time.Time, time.Time, *string) ([]repository.DailySalesResult, error) {
	panic("no se usa en checkout")
}

type fixedCatalogRepo struct {
	products map[string]decimal.Decimal
	combos   map[string]decimal.Decimal
}

func (f *fixedCatalogRepo) GetProductByID(_ context.Context, id string) (*entity.Product, error) {
	price, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Product{ID: id, Name: "producto " + id, Price: price}, nil
}

func (f *fixedCatalogRepo) GetComboByID(_ context.Context, id string) (*entity.Combo, error) {
	price, ok := f.combos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Combo{ID: id, Name: "combo " + id, Price: price}, nil
}

func (f *fixedCatalogRepo) ListProducts(context.Context) ([]repository.ProductWithType, error) {
	return nil, nil
}
func (f *fixedCatalogRepo) GetProductName(context.Context, string) (string, error) {
	return "", domain.ErrNotFound
}
func (f *fixedCatalogRepo) GetComboName(context.Context, string) (string, error) {
	return "", domain.ErrNotFound
}

func strPtr(s string) *string { return &s }

func newCheckout(salesRepo *capturingSalesRepo) (*sales.CreateSaleUseCase, *fakeTxRunner) {
	catalog := &fixedCatalogRepo{
		products: map[string]decimal.Decimal{
			"p-nutella": decimal.RequireFromString("55.00"),
			"p-fresa":   decimal.RequireFromString("48.50"),
		},
		combos: map[string]decimal.Decimal{
			"c-desayuno": decimal.RequireFromString("89.90"),
		},
	}
	runner := &fakeTxRunner{salesRepo: salesRepo, catalogRepo: catalog}
	nowFn := func() time.Time { return time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC) }
	return sales.NewCreateSaleUseCase(runner, nowFn), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Venta mixta: 2 crepas + 1 combo. El total lo calcula el servidor con el
// precio vigente del catálogo; los precios del cliente no existen.
func TestCreateSale_TotalCalculadoEnServidor(t *testing.T) {
	salesRepo := &capturingSalesRepo{}
	uc, _ := newCheckout(salesRepo)

	resp, err := uc.Execute(context.Background(), "user-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleLineRequest{
			{ProductID: strPtr("p-nutella"), Amount: 2},
			{ComboID: strPtr("c-desayuno"), Amount: 1},
		},
	})
	require.NoError(t, err)

	// 2 × 55.00 + 1 × 89.90 = 199.90
	assert.Equal(t, "199.90", resp.Total)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2024-03-15T18:30:00Z", resp.CreatedAt)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "55.00", resp.Items[0].UnitPrice)
	assert.Equal(t, "89.90", resp.Items[1].UnitPrice)

	require.NotNil(t, salesRepo.saved)
	assert.Equal(t, "199.90", salesRepo.saved.Total.StringFixed(2))
	require.Len(t, salesRepo.saved.Items, 2)
	for _, li := range salesRepo.saved.Items {
		assert.Equal(t, salesRepo.saved.ID, li.SaleID)
		assert.NotEmpty(t, li.ID)
	}
}

func TestCreateSale_SinLineas(t *testing.T) {
	salesRepo := &capturingSalesRepo{}
	uc, runner := newCheckout(salesRepo)

	_, err := uc.Execute(context.Background(), "user-1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
	assert.Zero(t, runner.runs, "la validación falla antes de abrir transacción")
}

func TestCreateSale_LineaInvalida(t *testing.T) {
	cases := []struct {
		name string
		item dto.CreateSaleLineRequest
	}{
		{"amount cero", dto.CreateSaleLineRequest{ProductID: strPtr("p-fresa"), Amount: 0}},
		{"amount negativo", dto.CreateSaleLineRequest{ProductID: strPtr("p-fresa"), Amount: -1}},
		{"sin producto ni combo", dto.CreateSaleLineRequest{Amount: 1}},
		{"producto y combo a la vez", dto.CreateSaleLineRequest{
			ProductID: strPtr("p-fresa"), ComboID: strPtr("c-desayuno"), Amount: 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			salesRepo := &capturingSalesRepo{}
			uc, runner := newCheckout(salesRepo)

			_, err := uc.Execute(context.Background(), "user-1", dto.CreateSaleRequest{
				Items: []dto.CreateSaleLineRequest{tc.item},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
			assert.Zero(t, runner.runs)
		})
	}
}

// Un id que no existe en el catálogo aborta la venta completa (rollback).
func TestCreateSale_ProductoInexistente(t *testing.T) {
	salesRepo := &capturingSalesRepo{}
	uc, _ := newCheckout(salesRepo)

	_, err := uc.Execute(context.Background(), "user-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleLineRequest{
			{ProductID: strPtr("p-nutella"), Amount: 1},
			{ProductID: strPtr("p-fantasma"), Amount: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "p-fantasma")
	assert.Nil(t, salesRepo.saved, "nada debe persistirse si una línea falla")
}

func TestCreateSale_ErrorDePersistencia(t *testing.T) {
	salesRepo := &capturingSalesRepo{err: domain.ErrDuplicate}
	uc, _ := newCheckout(salesRepo)

	_, err := uc.Execute(context.Background(), "user-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleLineRequest{{ProductID: strPtr("p-fresa"), Amount: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
