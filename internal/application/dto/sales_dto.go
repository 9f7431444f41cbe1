package dto

// CreateSaleLineRequest una línea del ticket. Exactamente uno de ProductID
// o ComboID debe venir; Amount > 0.
type CreateSaleLineRequest struct {
	ProductID *string `json:"product_id,omitempty"`
	ComboID   *string `json:"combo_id,omitempty"`
	Amount    int     `json:"amount"`
}

// CreateSaleRequest cuerpo de POST /api/sales.
type CreateSaleRequest struct {
	Items []CreateSaleLineRequest `json:"items"`
}

// SaleLineResponse línea persistida con el precio aplicado.
type SaleLineResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"product_id,omitempty"`
	ComboID   *string `json:"combo_id,omitempty"`
	Amount    int     `json:"amount"`
	UnitPrice string  `json:"unit_price"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Total     string             `json:"total"`
	CreatedAt string             `json:"created_at"` // RFC 3339
	Items     []SaleLineResponse `json:"items"`
}
