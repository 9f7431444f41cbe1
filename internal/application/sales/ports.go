package sales

import (
	"context"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		salesRepo repository.SalesRepository,
		catalogRepo repository.CatalogRepository,
	) error) error
}
