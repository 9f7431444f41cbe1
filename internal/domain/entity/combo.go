package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Combo paquete de productos con precio propio (ej. crepa + bebida).
type Combo struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}
