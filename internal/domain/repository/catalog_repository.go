package repository

import (
	"context"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
)

// CatalogRepository consultas de lectura sobre el catálogo (productos,
// tipos de producto y combos).
type CatalogRepository interface {
	// ListProducts devuelve el menú completo con el nombre del tipo resuelto.
	ListProducts(ctx context.Context) ([]ProductWithType, error)

	// GetProductByID devuelve domain.ErrNotFound si el producto no existe.
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)

	// GetComboByID devuelve domain.ErrNotFound si el combo no existe.
	GetComboByID(ctx context.Context, id string) (*entity.Combo, error)

	// GetProductName resuelve el nombre para el ranking del dashboard.
	// Devuelve domain.ErrNotFound si el id ya no existe en el catálogo.
	GetProductName(ctx context.Context, id string) (string, error)

	// GetComboName ídem para combos.
	GetComboName(ctx context.Context, id string) (string, error)
}

// ProductWithType producto con su categoría resuelta (JOIN en la DB).
type ProductWithType struct {
	Product  entity.Product
	TypeName string // "" si el producto no tiene tipo asignado
}
