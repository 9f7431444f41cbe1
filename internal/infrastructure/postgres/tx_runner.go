package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/sales"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool          *pgxpool.Pool
	tzOffsetHours int
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool, tzOffsetHours int) *TxRunner {
	return &TxRunner{pool: pool, tzOffsetHours: tzOffsetHours}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	salesRepo repository.SalesRepository,
	catalogRepo repository.CatalogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	salesRepo := NewSalesRepository(tx, r.tzOffsetHours)
	catalogRepo := NewCatalogRepository(tx)

	if err := fn(salesRepo, catalogRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
