package repository

import (
	"context"

	"github.com/stokly/insights-api/internal/domain/entity"
)

// UserRepository acceso a los usuarios de la aplicación.
type UserRepository interface {
	// Create persiste un nuevo usuario.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail busca un usuario por email. Devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
