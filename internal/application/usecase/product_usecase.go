package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/catalog"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// ProductUseCase CRUD de productos con las validaciones de integridad
// referencial: existencia de la marca, unicidad de slug y, en el
// borrado, el barrido que retira el id de las listas de compatibilidad
// de accesorios y repuestos.
type ProductUseCase struct {
	products    repository.ProductRepository
	brands      repository.BrandRepository
	accessories repository.PartRepository
	spareParts  repository.PartRepository
}

// NewProductUseCase construye el caso de uso con los puertos que
// participan en las validaciones cruzadas.
func NewProductUseCase(
	products repository.ProductRepository,
	brands repository.BrandRepository,
	accessories repository.PartRepository,
	spareParts repository.PartRepository,
) *ProductUseCase {
	return &ProductUseCase{
		products:    products,
		brands:      brands,
		accessories: accessories,
		spareParts:  spareParts,
	}
}

// Create crea un producto: valida la marca, deriva el slug si falta y
// pre-chequea su unicidad antes de persistir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Brand == "" || in.Color == "" || in.ModelCode == "" || in.Scale == "" {
		return nil, domain.BadRequest("name, brand, color, modelCode y scale son requeridos")
	}
	if in.Price.IsNegative() {
		return nil, domain.BadRequest("price no puede ser negativo")
	}
	if err := validateMedia(in.Media); err != nil {
		return nil, err
	}

	if err := uc.requireBrand(ctx, in.Brand); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = catalog.Slugify(in.Name)
	}
	existing, err := uc.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.BadRequest("ya existe un producto con slug %s", slug)
	}

	now := time.Now()
	product := &entity.Product{
		ID:             primitive.NewObjectID(),
		Name:           in.Name,
		Brand:          in.Brand,
		Color:          in.Color,
		ModelCode:      in.ModelCode,
		Scale:          in.Scale,
		Price:          in.Price,
		Slug:           slug,
		Media:          in.Media,
		SocialLinks:    in.SocialLinks,
		TechnicalSpecs: in.TechnicalSpecs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.OutOfStock != nil {
		product.OutOfStock = *in.OutOfStock
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve los productos que pasan el filtro, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySlug obtiene un producto por slug.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("producto con slug %s no encontrado", slug)
	}
	return toProductResponse(product), nil
}

// WithSpareParts devuelve el producto junto a los repuestos compatibles.
func (uc *ProductUseCase) WithSpareParts(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	return uc.detail(ctx, id, false, true)
}

// WithAccessories devuelve el producto junto a los accesorios compatibles.
func (uc *ProductUseCase) WithAccessories(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	return uc.detail(ctx, id, true, false)
}

// Complete devuelve el producto con accesorios y repuestos compatibles.
func (uc *ProductUseCase) Complete(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	return uc.detail(ctx, id, true, true)
}

// Update actualiza un producto (merge). Marca y slug nuevos repiten las
// mismas validaciones que en el create.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	// Los campos requeridos pueden omitirse en el merge, pero nunca vaciarse.
	if clearsRequired(in.Name, in.Brand, in.Color, in.ModelCode, in.Scale, in.Slug) {
		return nil, domain.BadRequest("name, brand, color, modelCode, scale y slug no pueden quedar vacíos")
	}

	if in.Brand != nil && *in.Brand != product.Brand {
		if err := uc.requireBrand(ctx, *in.Brand); err != nil {
			return nil, err
		}
		product.Brand = *in.Brand
	}
	if in.Slug != nil && *in.Slug != product.Slug {
		existing, err := uc.products.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, domain.BadRequest("ya existe un producto con slug %s", *in.Slug)
		}
		product.Slug = *in.Slug
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.BadRequest("price no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.Media != nil {
		if err := validateMedia(in.Media); err != nil {
			return nil, err
		}
		product.Media = in.Media
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.ModelCode != nil {
		product.ModelCode = *in.ModelCode
	}
	if in.Scale != nil {
		product.Scale = *in.Scale
	}
	if in.OutOfStock != nil {
		product.OutOfStock = *in.OutOfStock
	}
	if in.SocialLinks != nil {
		product.SocialLinks = in.SocialLinks
	}
	if in.TechnicalSpecs != nil {
		product.TechnicalSpecs = in.TechnicalSpecs
	}

	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y retira su id de las listas de
// compatibilidad de ambas colecciones. Barrido secuencial sin
// transacción: cada paso es atómico por documento, la secuencia no.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.getProduct(ctx, id)
	if err != nil {
		return err
	}

	pid := product.ID.Hex()
	if err := uc.accessories.PullCompatibleProduct(ctx, pid); err != nil {
		return err
	}
	if err := uc.spareParts.PullCompatibleProduct(ctx, pid); err != nil {
		return err
	}
	return uc.products.Delete(ctx, pid)
}

func (uc *ProductUseCase) detail(ctx context.Context, id string, withAccessories, withSpareParts bool) (*dto.ProductDetailResponse, error) {
	product, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductDetailResponse{ProductResponse: *toProductResponse(product)}
	if withAccessories {
		parts, err := uc.accessories.ListByCompatibleProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		out.CompatibleAccessories = toPartResponses(parts)
	}
	if withSpareParts {
		parts, err := uc.spareParts.ListByCompatibleProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		out.CompatibleSpareParts = toPartResponses(parts)
	}
	return out, nil
}

func (uc *ProductUseCase) getProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("producto con id %s no encontrado", id)
	}
	return product, nil
}

func (uc *ProductUseCase) requireBrand(ctx context.Context, name string) error {
	brand, err := uc.brands.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.BadRequest("la marca %s no existe", name)
	}
	return nil
}

// clearsRequired detecta campos requeridos enviados explícitamente en
// blanco en un update (nil significa "no tocar" y pasa).
func clearsRequired(fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.TrimSpace(*f) == "" {
			return true
		}
	}
	return false
}

func validateMedia(media []entity.Media) error {
	for _, m := range media {
		if !entity.ValidMediaType(m.Type) {
			return domain.BadRequest("tipo de media inválido: %s", m.Type)
		}
		if m.URL == "" {
			return domain.BadRequest("media.url es requerido")
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		Brand:          p.Brand,
		Color:          p.Color,
		ModelCode:      p.ModelCode,
		Scale:          p.Scale,
		OutOfStock:     p.OutOfStock,
		Price:          p.Price,
		Slug:           p.Slug,
		Media:          p.Media,
		SocialLinks:    p.SocialLinks,
		TechnicalSpecs: p.TechnicalSpecs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
