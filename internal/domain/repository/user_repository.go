package repository

import (
	"context"

	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Las lecturas devuelven (nil, nil) cuando no hay documento.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
