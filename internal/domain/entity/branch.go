package entity

import "time"

// Branch sucursal del negocio. Las ventas se asocian a una sucursal
// a través del usuario que las registró (users.branch_id).
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
