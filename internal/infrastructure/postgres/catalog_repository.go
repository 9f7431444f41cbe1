package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo consultas de solo lectura sobre productos, tipos y combos.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListProducts devuelve el menú completo con el nombre del tipo resuelto.
// Los productos sin tipo llevan cadena vacía.
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]repository.ProductWithType, error) {
	const query = `
	SELECT p.id, p.name, p.price, p.type_id, p.created_at,
	       COALESCE(pt.name, '') AS type_name
	FROM products p
	LEFT JOIN product_types pt ON pt.id = p.type_id
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductWithType
	for rows.Next() {
		var row repository.ProductWithType
		if err := rows.Scan(
			&row.Product.ID,
			&row.Product.Name,
			&row.Product.Price,
			&row.Product.TypeID,
			&row.Product.CreatedAt,
			&row.TypeName,
		); err != nil {
			return nil, fmt.Errorf("catalog.ListProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.ProductWithType{}
	}
	return results, rows.Err()
}

// GetProductByID obtiene un producto; domain.ErrNotFound si no existe.
func (r *CatalogRepo) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
	SELECT id, name, price, type_id, created_at
	FROM products WHERE id = $1`

	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.TypeID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("catalog.GetProductByID: %w", err)
	}
	return &p, nil
}

// GetComboByID obtiene un combo; domain.ErrNotFound si no existe.
func (r *CatalogRepo) GetComboByID(ctx context.Context, id string) (*entity.Combo, error) {
	const query = `
	SELECT id, name, price, created_at
	FROM combos WHERE id = $1`

	var c entity.Combo
	err := r.q.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Price, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("catalog.GetComboByID: %w", err)
	}
	return &c, nil
}

// GetProductName resuelve solo el nombre (lookup puntual para el ranking).
func (r *CatalogRepo) GetProductName(ctx context.Context, id string) (string, error) {
	return r.nameLookup(ctx, "GetProductName", `SELECT name FROM products WHERE id = $1`, id)
}

// GetComboName ídem para combos.
func (r *CatalogRepo) GetComboName(ctx context.Context, id string) (string, error) {
	return r.nameLookup(ctx, "GetComboName", `SELECT name FROM combos WHERE id = $1`, id)
}

func (r *CatalogRepo) nameLookup(ctx context.Context, op, query, id string) (string, error) {
	var name string
	err := r.q.QueryRow(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("catalog.%s: %w", op, err)
	}
	return name, nil
}
