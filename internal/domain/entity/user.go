package entity

import "time"

// Roles del personal de la crepería.
const (
	RoleAdmin   = "admin"
	RoleGerente = "gerente"
	RoleCajero  = "cajero"
)

// User empleado que opera el punto de venta.
// BranchID es opcional: un admin puede no estar asignado a ninguna sucursal.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string // "admin" | "gerente" | "cajero"
	BranchID     *string
	CreatedAt    time.Time
}
