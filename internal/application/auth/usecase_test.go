package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/modelcar-catalog/internal/application/auth"
	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// fakeUserRepo implementación en memoria del puerto de usuarios.
type fakeUserRepo struct {
	users map[string]*entity.User // key: id hex
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newTestUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "modelcar-catalog-test",
	})
	return uc, repo
}

func register(t *testing.T, uc *auth.UseCase) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana Gómez",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	return out
}

func TestRegister_CreaUsuarioConTokenYRolUser(t *testing.T) {
	uc, repo := newTestUseCase()
	out := register(t, uc)

	assert.NotEmpty(t, out.Token, "el registro debe emitir un token")
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.True(t, out.User.IsActive)
	assert.Equal(t, "ana@example.com", out.User.Email)

	stored := repo.users[out.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_NormalizaEmail(t *testing.T) {
	uc, _ := newTestUseCase()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Email:    "  ANA@Example.COM ",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newTestUseCase()
	register(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Otra Ana",
		Email:    "ana@example.com",
		Password: "otroSecreto",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "corto",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := newTestUseCase()
	register(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

// Email inexistente, password incorrecto y cuenta desactivada deben
// responder exactamente el mismo error para no filtrar qué cuentas existen.
func TestLogin_ErrorUnificado(t *testing.T) {
	uc, repo := newTestUseCase()
	registered := register(t, uc)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})

	repo.users[registered.User.ID].IsActive = false
	_, errInactive := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})

	for _, err := range []error{errUnknown, errWrongPass, errInactive} {
		require.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
		assert.EqualError(t, err, "credenciales inválidas")
	}
}

func TestMe_DevuelveUsuarioActual(t *testing.T) {
	uc, _ := newTestUseCase()
	registered := register(t, uc)

	out, err := uc.Me(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.ID)
}

func TestAuthorize_ReglaDePropiedad(t *testing.T) {
	assert.NoError(t, auth.Authorize(entity.RoleAdmin, "admin-id", "otro-id"),
		"admin puede actuar sobre cualquier recurso")
	assert.NoError(t, auth.Authorize(entity.RoleUser, "user-1", "user-1"),
		"un usuario puede actuar sobre su propio recurso")

	err := auth.Authorize(entity.RoleUser, "user-1", "user-2")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}
