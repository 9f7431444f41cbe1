package repository

import (
	"context"

	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByUsername devuelve nil, nil si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
