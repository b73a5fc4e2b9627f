package dto

import "time"

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Logo string `json:"logo" validate:"required"`
}

// UpdateBrandRequest entrada para actualizar una marca (merge).
type UpdateBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Logo *string `json:"logo"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
