package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale encabezado de una venta (ticket). Total es la suma de las líneas,
// calculada en el servidor al momento de registrar la venta.
type Sale struct {
	ID        string
	UserID    string // empleado que registró la venta
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []SaleLineItem
}

// SaleLineItem línea de una venta. Exactamente uno de ProductID o ComboID
// debe estar presente; Amount es la cantidad vendida.
type SaleLineItem struct {
	ID        string
	SaleID    string
	ProductID *string
	ComboID   *string
	Amount    int
	UnitPrice decimal.Decimal // precio unitario al momento de la venta
}

// Valid verifica la invariante producto XOR combo y cantidad positiva.
func (li SaleLineItem) Valid() bool {
	if li.Amount <= 0 {
		return false
	}
	return (li.ProductID != nil) != (li.ComboID != nil)
}
