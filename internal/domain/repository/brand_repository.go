package repository

import (
	"context"

	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand.
// List ordena por nombre ascendente (las demás colecciones usan
// createdAt descendente).
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	List(ctx context.Context) ([]*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id string) error
}
