package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de ventas para el dashboard y registro de tickets.
// tzOffsetHours es el desfase civil fijo usado para agrupar por día.
type SalesRepo struct {
	q             Querier
	tzOffsetHours int
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier, tzOffsetHours int) *SalesRepo {
	return &SalesRepo{q: q, tzOffsetHours: tzOffsetHours}
}

// GetSalesSummary devuelve total vendido, número de tickets y unidades
// vendidas dentro de la ventana [start, end] inclusiva.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
// branchID nil = sin filtro de sucursal.
func (r *SalesRepo) GetSalesSummary(
	ctx context.Context,
	start, end time.Time,
	branchID *string,
) (repository.SalesSummaryResult, error) {
	const headerQuery = `
	SELECT
	    COALESCE(SUM(s.total), 0) AS total,
	    COUNT(*)                  AS orders
	FROM sales s
	WHERE s.created_at BETWEEN $1 AND $2
	  AND ($3::uuid IS NULL OR s.user_id IN (
	      SELECT u.id FROM users u WHERE u.branch_id = $3))`

	var result repository.SalesSummaryResult
	err := r.q.QueryRow(ctx, headerQuery, start, end, branchID).
		Scan(&result.Total, &result.Orders)
	if err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("sales.GetSalesSummary: %w", err)
	}

	const unitsQuery = `
	SELECT COALESCE(SUM(li.amount), 0) AS units
	FROM sale_line_items li
	JOIN sales s ON s.id = li.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	  AND ($3::uuid IS NULL OR s.user_id IN (
	      SELECT u.id FROM users u WHERE u.branch_id = $3))`

	err = r.q.QueryRow(ctx, unitsQuery, start, end, branchID).Scan(&result.Units)
	if err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("sales.GetSalesSummary units: %w", err)
	}
	return result, nil
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas
// en el período, ordenados por cantidad descendente. Los empates quedan en
// el orden que devuelva la DB.
func (r *SalesRepo) GetTopProducts(
	ctx context.Context,
	start, end time.Time,
	branchID *string,
	limit int,
) ([]repository.RankedQuantityResult, error) {
	const query = `
	SELECT li.product_id, SUM(li.amount) AS quantity
	FROM sale_line_items li
	JOIN sales s ON s.id = li.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	  AND li.product_id IS NOT NULL
	  AND ($3::uuid IS NULL OR s.user_id IN (
	      SELECT u.id FROM users u WHERE u.branch_id = $3))
	GROUP BY li.product_id
	ORDER BY quantity DESC
	LIMIT $4`

	return r.rankedQuery(ctx, "GetTopProducts", query, start, end, branchID, limit)
}

// GetTopCombos ídem para combos.
func (r *SalesRepo) GetTopCombos(
	ctx context.Context,
	start, end time.Time,
	branchID *string,
	limit int,
) ([]repository.RankedQuantityResult, error) {
	const query = `
	SELECT li.combo_id, SUM(li.amount) AS quantity
	FROM sale_line_items li
	JOIN sales s ON s.id = li.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	  AND li.combo_id IS NOT NULL
	  AND ($3::uuid IS NULL OR s.user_id IN (
	      SELECT u.id FROM users u WHERE u.branch_id = $3))
	GROUP BY li.combo_id
	ORDER BY quantity DESC
	LIMIT $4`

	return r.rankedQuery(ctx, "GetTopCombos", query, start, end, branchID, limit)
}

func (r *SalesRepo) rankedQuery(
	ctx context.Context,
	op, query string,
	start, end time.Time,
	branchID *string,
	limit int,
) ([]repository.RankedQuantityResult, error) {
	rows, err := r.q.Query(ctx, query, start, end, branchID, limit)
	if err != nil {
		return nil, fmt.Errorf("sales.%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.RankedQuantityResult
	for rows.Next() {
		var row repository.RankedQuantityResult
		if err := rows.Scan(&row.ID, &row.Quantity); err != nil {
			return nil, fmt.Errorf("sales.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.%s rows: %w", op, err)
	}
	return results, nil
}

// GetDailySales agrupa el total vendido por día civil (según el offset fijo
// configurado) dentro del rango. Los días sin ventas no aparecen en el
// resultado; el use case los rellena con cero.
func (r *SalesRepo) GetDailySales(
	ctx context.Context,
	start, end time.Time,
	branchID *string,
) ([]repository.DailySalesResult, error) {
	const query = `
	SELECT
	    (s.created_at + make_interval(hours => $4))::date AS day,
	    COALESCE(SUM(s.total), 0)                         AS total
	FROM sales s
	WHERE s.created_at BETWEEN $1 AND $2
	  AND ($3::uuid IS NULL OR s.user_id IN (
	      SELECT u.id FROM users u WHERE u.branch_id = $3))
	GROUP BY day
	ORDER BY day`

	rows, err := r.q.Query(ctx, query, start, end, branchID, r.tzOffsetHours)
	if err != nil {
		return nil, fmt.Errorf("sales.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesResult
	for rows.Next() {
		var row repository.DailySalesResult
		if err := rows.Scan(&row.Day, &row.Total); err != nil {
			return nil, fmt.Errorf("sales.GetDailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CreateSale persiste el encabezado de la venta y todas sus líneas.
// Se asume que el caller ya corre dentro de una transacción (TxRunner).
func (r *SalesRepo) CreateSale(ctx context.Context, sale *entity.Sale) error {
	const saleInsert = `
	INSERT INTO sales (id, user_id, total, created_at)
	VALUES ($1, $2, $3, $4)`

	_, err := r.q.Exec(ctx, saleInsert, sale.ID, sale.UserID, sale.Total, sale.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("sales.CreateSale: %w", err)
	}

	const itemInsert = `
	INSERT INTO sale_line_items (id, sale_id, product_id, combo_id, amount, unit_price)
	VALUES ($1, $2, $3, $4, $5, $6)`

	for _, li := range sale.Items {
		_, err := r.q.Exec(ctx, itemInsert,
			li.ID, sale.ID, li.ProductID, li.ComboID, li.Amount, li.UnitPrice)
		if err != nil {
			return fmt.Errorf("sales.CreateSale línea: %w", err)
		}
	}
	return nil
}
