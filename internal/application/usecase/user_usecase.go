package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/modelcar-catalog/internal/application/auth"
	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// UserUseCase administración de usuarios: listado, perfil, cambio de
// contraseña y borrado. El registro vive en el caso de uso de auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario con id %s no encontrado", id)
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza el perfil con semántica de merge. Role y password no
// son actualizables por esta vía; el email nuevo se pre-chequea contra
// el índice único.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario con id %s no encontrado", id)
	}

	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email == "" {
			return nil, domain.BadRequest("email no puede quedar vacío")
		}
		if email != user.Email {
			existing, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.BadRequest("el email %s ya está en uso", email)
			}
		}
		user.Email = email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.BadRequest("name no puede quedar vacío")
		}
		user.Name = name
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdatePassword cambia la contraseña verificando primero la actual.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.BadRequest("currentPassword y newPassword son requeridos")
	}
	if len(newPassword) < 6 {
		return domain.BadRequest("el password debe tener al menos 6 caracteres")
	}

	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("usuario con id %s no encontrado", id)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.Unauthorized("la contraseña actual es incorrecta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, user)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("usuario con id %s no encontrado", id)
	}
	return uc.repo.Delete(ctx, id)
}
