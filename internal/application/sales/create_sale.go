// Package sales contiene el caso de uso de registro de ventas (checkout).
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

// CreateSaleUseCase registra un ticket completo en una sola transacción:
// valida cada línea contra el catálogo, toma el precio vigente y calcula
// el total en el servidor. El cliente nunca manda precios.
type CreateSaleUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewCreateSaleUseCase construye el caso de uso. nowFn nil = time.Now.
func NewCreateSaleUseCase(txRunner TxRunner, nowFn func() time.Time) *CreateSaleUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &CreateSaleUseCase{txRunner: txRunner, now: nowFn}
}

// Execute valida y persiste la venta. userID viene del token JWT.
// Errores de validación envuelven domain.ErrInvalidInput / ErrEmptySale.
func (uc *CreateSaleUseCase) Execute(
	ctx context.Context,
	userID string,
	req dto.CreateSaleRequest,
) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	for i, item := range req.Items {
		if item.Amount <= 0 {
			return nil, fmt.Errorf("%w: línea %d: amount debe ser positivo", domain.ErrInvalidLineItem, i)
		}
		if (item.ProductID == nil) == (item.ComboID == nil) {
			return nil, fmt.Errorf("%w: línea %d: exactamente uno de product_id o combo_id", domain.ErrInvalidLineItem, i)
		}
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: uc.now().UTC(),
	}

	err := uc.txRunner.Run(ctx, func(
		salesRepo repository.SalesRepository,
		catalogRepo repository.CatalogRepository,
	) error {
		total := decimal.Zero
		for _, item := range req.Items {
			price, err := uc.priceLine(ctx, catalogRepo, item)
			if err != nil {
				return err
			}
			line := entity.SaleLineItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				ComboID:   item.ComboID,
				Amount:    item.Amount,
				UnitPrice: price,
			}
			sale.Items = append(sale.Items, line)
			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Amount))))
		}
		sale.Total = total
		return salesRepo.CreateSale(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// priceLine resuelve el precio vigente de la línea contra el catálogo.
// Un id inexistente es error del cliente, no del sistema.
func (uc *CreateSaleUseCase) priceLine(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	item dto.CreateSaleLineRequest,
) (decimal.Decimal, error) {
	if item.ProductID != nil {
		product, err := catalogRepo.GetProductByID(ctx, *item.ProductID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("producto %s: %w", *item.ProductID, err)
		}
		return product.Price, nil
	}
	combo, err := catalogRepo.GetComboByID(ctx, *item.ComboID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("combo %s: %w", *item.ComboID, err)
	}
	return combo.Price, nil
}

func toSaleResponse(sale *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleLineResponse, 0, len(sale.Items))
	for _, li := range sale.Items {
		items = append(items, dto.SaleLineResponse{
			ID:        li.ID,
			ProductID: li.ProductID,
			ComboID:   li.ComboID,
			Amount:    li.Amount,
			UnitPrice: li.UnitPrice.StringFixed(2),
		})
	}
	return &dto.SaleResponse{
		ID:        sale.ID,
		UserID:    sale.UserID,
		Total:     sale.Total.StringFixed(2),
		CreatedAt: sale.CreatedAt.Format(time.RFC3339),
		Items:     items,
	}
}
