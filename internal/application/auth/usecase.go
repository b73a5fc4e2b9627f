package auth

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
	"github.com/tu-usuario/modelcar-catalog/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login, usuario actual
// y chequeo de propiedad.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt, persiste y
// emite el token. Falla con BadRequest si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.BadRequest("name, email y password son requeridos")
	}
	if len(in.Password) < 6 {
		return nil, domain.BadRequest("el password debe tener al menos 6 caracteres")
	}

	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.BadRequest("el email %s ya está registrado", in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           primitive.NewObjectID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *ToUserResponse(user), Token: token}, nil
}

// Login verifica email/password y devuelve token + usuario. Email
// inexistente, password incorrecto y cuenta desactivada responden el
// mismo Unauthorized para no permitir enumeración de cuentas.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.BadRequest("email y password son requeridos")
	}

	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, errInvalidCredentials()
	}
	if !user.IsActive {
		return nil, errInvalidCredentials()
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *ToUserResponse(user), Token: token}, nil
}

// Me devuelve el usuario autenticado actual.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	return ToUserResponse(user), nil
}

// Authorize aplica la regla de propiedad: admin pasa siempre; cualquier
// otro rol solo puede actuar sobre su propio recurso.
func Authorize(actorRole, actorID, ownerID string) error {
	if actorRole == entity.RoleAdmin {
		return nil
	}
	if actorID != "" && actorID == ownerID {
		return nil
	}
	return domain.Forbidden("no autorizado para acceder a este recurso")
}

func errInvalidCredentials() error {
	return domain.Unauthorized("credenciales inválidas")
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
