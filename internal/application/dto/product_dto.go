package dto

// ProductResponse producto del menú con su categoría resuelta.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"` // dos decimales fijos
	TypeName string `json:"type_name,omitempty"`
}
