package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Slug es opcional:
// si falta se deriva del nombre.
type CreateProductRequest struct {
	Name           string              `json:"name" validate:"required,min=1,max=200"`
	Brand          string              `json:"brand" validate:"required"`
	Color          string              `json:"color" validate:"required"`
	ModelCode      string              `json:"modelCode" validate:"required"`
	Scale          string              `json:"scale" validate:"required"`
	Price          decimal.Decimal     `json:"price"`
	Slug           string              `json:"slug"`
	OutOfStock     *bool               `json:"outOfStock"`
	Media          []entity.Media      `json:"media"`
	SocialLinks    *entity.SocialLinks `json:"socialLinks"`
	TechnicalSpecs []string            `json:"technicalSpecs"`
}

// UpdateProductRequest entrada para actualizar un producto (merge: solo
// los campos presentes sobrescriben).
type UpdateProductRequest struct {
	Name           *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Brand          *string             `json:"brand"`
	Color          *string             `json:"color"`
	ModelCode      *string             `json:"modelCode"`
	Scale          *string             `json:"scale"`
	Price          *decimal.Decimal    `json:"price"`
	Slug           *string             `json:"slug"`
	OutOfStock     *bool               `json:"outOfStock"`
	Media          []entity.Media      `json:"media"`
	SocialLinks    *entity.SocialLinks `json:"socialLinks"`
	TechnicalSpecs []string            `json:"technicalSpecs"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Brand          string              `json:"brand"`
	Color          string              `json:"color"`
	ModelCode      string              `json:"modelCode"`
	Scale          string              `json:"scale"`
	OutOfStock     bool                `json:"outOfStock"`
	Price          decimal.Decimal     `json:"price"`
	Slug           string              `json:"slug"`
	Media          []entity.Media      `json:"media,omitempty"`
	SocialLinks    *entity.SocialLinks `json:"socialLinks,omitempty"`
	TechnicalSpecs []string            `json:"technicalSpecs,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ProductDetailResponse producto más sus accesorios y/o repuestos
// compatibles (endpoints /spare-parts, /accessories y /complete).
type ProductDetailResponse struct {
	ProductResponse
	CompatibleSpareParts  []PartResponse `json:"compatibleSpareParts,omitempty"`
	CompatibleAccessories []PartResponse `json:"compatibleAccessories,omitempty"`
}
