package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// BrandUseCase CRUD de marcas. El nombre es único; el pre-chequeo da un
// mensaje amable y el índice único resuelve la carrera.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca nueva.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Logo == "" {
		return nil, domain.BadRequest("name y logo son requeridos")
	}

	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.BadRequest("ya existe una marca con nombre %s", name)
	}

	now := time.Now()
	brand := &entity.Brand{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Logo:      in.Logo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List devuelve todas las marcas ordenadas por nombre.
func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	brands, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, *toBrandResponse(b))
	}
	return out, nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.NotFound("marca con id %s no encontrada", id)
	}
	return toBrandResponse(brand), nil
}

// Update actualiza una marca (merge). Un nombre nuevo se pre-chequea
// contra el índice único.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.NotFound("marca con id %s no encontrada", id)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.BadRequest("name no puede quedar vacío")
		}
		if name != brand.Name {
			existing, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.BadRequest("ya existe una marca con nombre %s", name)
			}
		}
		brand.Name = name
	}
	if in.Logo != nil {
		if *in.Logo == "" {
			return nil, domain.BadRequest("logo no puede quedar vacío")
		}
		brand.Logo = *in.Logo
	}

	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// Delete elimina una marca. No hay barrido de referencias: los productos
// y partes que nombraban la marca conservan el string (validez solo al
// momento de escribir).
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.NotFound("marca con id %s no encontrada", id)
	}
	return uc.repo.Delete(ctx, id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{
		ID:        b.ID.Hex(),
		Name:      b.Name,
		Logo:      b.Logo,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
