package usecase

import (
	"context"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

// ProductUseCase lecturas del menú para la pantalla del punto de venta.
type ProductUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(catalogRepo repository.CatalogRepository) *ProductUseCase {
	return &ProductUseCase{catalogRepo: catalogRepo}
}

// List devuelve el menú completo con categorías resueltas.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	rows, err := uc.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(rows))
	for _, row := range rows {
		products = append(products, dto.ProductResponse{
			ID:       row.Product.ID,
			Name:     row.Product.Name,
			Price:    row.Product.Price.StringFixed(2),
			TypeName: row.TypeName,
		})
	}
	return products, nil
}

// GetByID devuelve un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price.StringFixed(2),
	}, nil
}
