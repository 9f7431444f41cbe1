package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
)

// SalesSummaryResult resultado crudo de la consulta de resumen de ventas.
// Lo produce la DB; el use case lo convierte en métricas con variación.
type SalesSummaryResult struct {
	Total  decimal.Decimal // Σ sales.total dentro de la ventana
	Orders int64           // número de tickets
	Units  int64           // Σ sale_line_items.amount (productos vendidos)
}

// RankedQuantityResult una entrada del ranking top-N (producto o combo)
// por cantidad vendida. Name se resuelve después, en el use case.
type RankedQuantityResult struct {
	ID       string // id del producto o combo
	Quantity int64  // Σ amount dentro de la ventana
}

// DailySalesResult total vendido en un día civil.
type DailySalesResult struct {
	Day   time.Time // medianoche civil del día
	Total decimal.Decimal
}

// SalesRepository consultas de lectura sobre ventas para el dashboard,
// todas acotadas por ventana [start, end] inclusiva. branchID opcional:
// si no es nil, restringe a ventas de usuarios asignados a esa sucursal.
type SalesRepository interface {
	// GetSalesSummary devuelve total, número de tickets y unidades vendidas
	// del período. Usa COALESCE para devolver cero si no hay ventas.
	GetSalesSummary(ctx context.Context, start, end time.Time, branchID *string) (SalesSummaryResult, error)

	// GetTopProducts devuelve los `limit` productos con más unidades vendidas
	// en el período, ordenados por cantidad descendente.
	GetTopProducts(ctx context.Context, start, end time.Time, branchID *string, limit int) ([]RankedQuantityResult, error)

	// GetTopCombos ídem para combos.
	GetTopCombos(ctx context.Context, start, end time.Time, branchID *string, limit int) ([]RankedQuantityResult, error)

	// GetDailySales agrupa el total vendido por día civil dentro del rango.
	// Los días sin ventas no aparecen; el use case rellena con cero.
	GetDailySales(ctx context.Context, start, end time.Time, branchID *string) ([]DailySalesResult, error)

	// CreateSale persiste el encabezado de la venta y sus líneas.
	CreateSale(ctx context.Context, sale *entity.Sale) error
}
