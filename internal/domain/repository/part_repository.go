package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// PartFilter filtros de listado para accesorios y repuestos.
type PartFilter struct {
	Brand          string
	Category       string // pertenencia en categories
	CompatibleWith string // id de producto presente en compatibleProductIds
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	InStock        *bool // true => outOfStock == false
}

// PartRepository define el puerto de persistencia compartido por las
// colecciones de accesorios y repuestos (estructuralmente idénticas).
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Part, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Part, error)
	List(ctx context.Context, filter PartFilter) ([]*entity.Part, error)
	ListByCompatibleProduct(ctx context.Context, productID string) ([]*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id string) error

	// PullCompatibleProduct retira el id del producto de todos los
	// documentos que lo referencien (barrido del cascade de borrado).
	PullCompatibleProduct(ctx context.Context, productID string) error
}
