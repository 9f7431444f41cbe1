package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto individual del menú (crepa, bebida, extra).
// TypeID es opcional: referencia a ProductType para agrupar por categoría.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta unitario
	TypeID    *string
	CreatedAt time.Time
}

// ProductType categoría de producto (dulce, salada, bebida, ...).
type ProductType struct {
	ID   string
	Name string
}
