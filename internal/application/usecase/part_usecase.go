package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/catalog"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// PartUseCase CRUD de accesorios y repuestos (misma estructura y mismas
// reglas, distinta colección). label aparece en los mensajes de error
// ("accesorio" / "repuesto"). Aplica la secuencia completa de
// integridad: marca, slug, sku, ids compatibles y recálculo de
// outOfStock.
type PartUseCase struct {
	label    string
	parts    repository.PartRepository
	products repository.ProductRepository
	brands   repository.BrandRepository
}

// NewPartUseCase construye el caso de uso para una de las dos colecciones.
func NewPartUseCase(label string, parts repository.PartRepository, products repository.ProductRepository, brands repository.BrandRepository) *PartUseCase {
	return &PartUseCase{label: label, parts: parts, products: products, brands: brands}
}

// Create crea un accesorio/repuesto aplicando todas las validaciones de
// integridad en orden: marca, slug, sku, productos compatibles.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Brand == "" || in.Description == "" {
		return nil, domain.BadRequest("name, sku, brand y description son requeridos")
	}
	if len(in.Categories) == 0 {
		return nil, domain.BadRequest("categories debe tener al menos un elemento")
	}
	if in.Price.IsNegative() {
		return nil, domain.BadRequest("price no puede ser negativo")
	}
	if in.Stock < 0 {
		return nil, domain.BadRequest("stock no puede ser negativo")
	}
	if err := validateMedia(in.Media); err != nil {
		return nil, err
	}
	if err := validateDimensions(in.Dimensions); err != nil {
		return nil, err
	}

	if err := uc.requireBrand(ctx, in.Brand); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = catalog.Slugify(in.Name)
	}
	if existing, err := uc.parts.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.BadRequest("ya existe un %s con slug %s", uc.label, slug)
	}

	if existing, err := uc.parts.GetBySKU(ctx, in.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.BadRequest("ya existe un %s con sku %s", uc.label, in.SKU)
	}

	compatible, err := uc.validateCompatibleProducts(ctx, in.CompatibleProductIds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	part := &entity.Part{
		ID:                   primitive.NewObjectID(),
		Name:                 in.Name,
		Slug:                 slug,
		SKU:                  in.SKU,
		Price:                in.Price,
		Stock:                in.Stock,
		Categories:           in.Categories,
		CompatibleProductIds: compatible,
		Brand:                in.Brand,
		Description:          in.Description,
		Media:                in.Media,
		Weight:               in.Weight,
		Dimensions:           in.Dimensions,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	part.RecomputeOutOfStock()

	if err := uc.parts.Create(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List devuelve los accesorios/repuestos que pasan el filtro.
func (uc *PartUseCase) List(ctx context.Context, filter repository.PartFilter) ([]dto.PartResponse, error) {
	parts, err := uc.parts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toPartResponses(parts), nil
}

// GetByID obtiene un accesorio/repuesto por ID.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.getPart(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetBySlug obtiene un accesorio/repuesto por slug.
func (uc *PartUseCase) GetBySlug(ctx context.Context, slug string) (*dto.PartResponse, error) {
	part, err := uc.parts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.NotFound("%s con slug %s no encontrado", uc.label, slug)
	}
	return toPartResponse(part), nil
}

// ForProduct devuelve los accesorios/repuestos compatibles con un
// producto, verificando primero que el producto exista.
func (uc *PartUseCase) ForProduct(ctx context.Context, productID string) ([]dto.PartResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("producto con id %s no encontrado", productID)
	}
	parts, err := uc.parts.ListByCompatibleProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toPartResponses(parts), nil
}

// Update actualiza un accesorio/repuesto (merge) repitiendo las
// validaciones sobre los campos que cambian.
func (uc *PartUseCase) Update(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.getPart(ctx, id)
	if err != nil {
		return nil, err
	}

	// Los campos requeridos pueden omitirse en el merge, pero nunca vaciarse.
	if clearsRequired(in.Name, in.Slug, in.SKU, in.Brand, in.Description) {
		return nil, domain.BadRequest("name, slug, sku, brand y description no pueden quedar vacíos")
	}

	if in.Brand != nil && *in.Brand != part.Brand {
		if err := uc.requireBrand(ctx, *in.Brand); err != nil {
			return nil, err
		}
		part.Brand = *in.Brand
	}
	if in.Slug != nil && *in.Slug != part.Slug {
		existing, err := uc.parts.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != part.ID {
			return nil, domain.BadRequest("ya existe un %s con slug %s", uc.label, *in.Slug)
		}
		part.Slug = *in.Slug
	}
	if in.SKU != nil && *in.SKU != part.SKU {
		existing, err := uc.parts.GetBySKU(ctx, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != part.ID {
			return nil, domain.BadRequest("ya existe un %s con sku %s", uc.label, *in.SKU)
		}
		part.SKU = *in.SKU
	}
	if in.CompatibleProductIds != nil {
		compatible, err := uc.validateCompatibleProducts(ctx, in.CompatibleProductIds)
		if err != nil {
			return nil, err
		}
		part.CompatibleProductIds = compatible
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.BadRequest("price no puede ser negativo")
		}
		part.Price = *in.Price
	}
	if in.Categories != nil {
		if len(in.Categories) == 0 {
			return nil, domain.BadRequest("categories debe tener al menos un elemento")
		}
		part.Categories = in.Categories
	}
	if in.Media != nil {
		if err := validateMedia(in.Media); err != nil {
			return nil, err
		}
		part.Media = in.Media
	}
	if in.Dimensions != nil {
		if err := validateDimensions(in.Dimensions); err != nil {
			return nil, err
		}
		part.Dimensions = in.Dimensions
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.Weight != nil {
		part.Weight = *in.Weight
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.BadRequest("stock no puede ser negativo")
		}
		part.Stock = *in.Stock
		part.RecomputeOutOfStock()
	}

	part.UpdatedAt = time.Now()
	if err := uc.parts.Update(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina un accesorio/repuesto por ID.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	part, err := uc.getPart(ctx, id)
	if err != nil {
		return err
	}
	return uc.parts.Delete(ctx, part.ID.Hex())
}

// validateCompatibleProducts valida formato y existencia de cada id, en
// el orden recibido; el primer fallo aborta la escritura completa.
func (uc *PartUseCase) validateCompatibleProducts(ctx context.Context, ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.BadRequest("id de producto inválido: %s", id)
		}
		product, err := uc.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.BadRequest("el producto con id %s no existe", id)
		}
		out = append(out, oid)
	}
	return out, nil
}

func (uc *PartUseCase) getPart(ctx context.Context, id string) (*entity.Part, error) {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.NotFound("%s con id %s no encontrado", uc.label, id)
	}
	return part, nil
}

func (uc *PartUseCase) requireBrand(ctx context.Context, name string) error {
	brand, err := uc.brands.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.BadRequest("la marca %s no existe", name)
	}
	return nil
}

func validateDimensions(d *entity.Dimensions) error {
	if d == nil {
		return nil
	}
	if !entity.ValidDimensionUnit(d.Unit) {
		return domain.BadRequest("unidad de dimensiones inválida: %s", d.Unit)
	}
	return nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	compatible := make([]string, 0, len(p.CompatibleProductIds))
	for _, oid := range p.CompatibleProductIds {
		compatible = append(compatible, oid.Hex())
	}
	return &dto.PartResponse{
		ID:                   p.ID.Hex(),
		Name:                 p.Name,
		Slug:                 p.Slug,
		SKU:                  p.SKU,
		Price:                p.Price,
		Stock:                p.Stock,
		OutOfStock:           p.OutOfStock,
		Categories:           p.Categories,
		CompatibleProductIds: compatible,
		Brand:                p.Brand,
		Description:          p.Description,
		Media:                p.Media,
		Weight:               p.Weight,
		Dimensions:           p.Dimensions,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toPartResponses(parts []*entity.Part) []dto.PartResponse {
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toPartResponse(p))
	}
	return out
}
