package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// CreatePartRequest entrada para crear un accesorio o repuesto.
// CompatibleProductIds llegan como hex de ObjectID y se validan uno a
// uno contra la colección de productos.
type CreatePartRequest struct {
	Name                 string             `json:"name" validate:"required,min=1,max=200"`
	Slug                 string             `json:"slug"`
	SKU                  string             `json:"sku" validate:"required"`
	Price                decimal.Decimal    `json:"price"`
	Stock                int                `json:"stock"`
	Categories           []string           `json:"categories" validate:"required,min=1"`
	CompatibleProductIds []string           `json:"compatibleProductIds"`
	Brand                string             `json:"brand" validate:"required"`
	Description          string             `json:"description" validate:"required"`
	Media                []entity.Media     `json:"media"`
	Weight               float64            `json:"weight"`
	Dimensions           *entity.Dimensions `json:"dimensions"`
}

// UpdatePartRequest entrada para actualizar un accesorio o repuesto
// (merge). Slices nil significan "no tocar".
type UpdatePartRequest struct {
	Name                 *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Slug                 *string            `json:"slug"`
	SKU                  *string            `json:"sku"`
	Price                *decimal.Decimal   `json:"price"`
	Stock                *int               `json:"stock"`
	Categories           []string           `json:"categories"`
	CompatibleProductIds []string           `json:"compatibleProductIds"`
	Brand                *string            `json:"brand"`
	Description          *string            `json:"description"`
	Media                []entity.Media     `json:"media"`
	Weight               *float64           `json:"weight"`
	Dimensions           *entity.Dimensions `json:"dimensions"`
}

// PartResponse salida de un accesorio o repuesto.
type PartResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Slug                 string             `json:"slug"`
	SKU                  string             `json:"sku"`
	Price                decimal.Decimal    `json:"price"`
	Stock                int                `json:"stock"`
	OutOfStock           bool               `json:"outOfStock"`
	Categories           []string           `json:"categories"`
	CompatibleProductIds []string           `json:"compatibleProductIds"`
	Brand                string             `json:"brand"`
	Description          string             `json:"description"`
	Media                []entity.Media     `json:"media,omitempty"`
	Weight               float64            `json:"weight"`
	Dimensions           *entity.Dimensions `json:"dimensions,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}
