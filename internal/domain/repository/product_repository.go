package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// ProductFilter filtros de listado para productos. Los punteros nil
// significan "sin filtro"; los strings vacíos también.
type ProductFilter struct {
	Name       string
	Brand      string
	Color      string
	Scale      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	OutOfStock *bool
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
