package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           primitive.NewObjectID(),
		Name:         "Ana Gómez",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserUpdate_EmailNuevoEnUso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")
	seedUser(t, repo, "otra@example.com", "secreto123")

	taken := "otra@example.com"
	_, err := uc.Update(context.Background(), ana.ID.Hex(), dto.UpdateUserRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestUserUpdate_NormalizaEmailYConservaRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")

	nuevo := " ANA.NUEVA@Example.com "
	out, err := uc.Update(context.Background(), ana.ID.Hex(), dto.UpdateUserRequest{Email: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "ana.nueva@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role, "el role no es actualizable por esta vía")
}

func TestUserUpdate_NoVaciaCamposRequeridos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")

	empty := ""
	_, err := uc.Update(context.Background(), ana.ID.Hex(), dto.UpdateUserRequest{Email: &empty})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Equal(t, "ana@example.com", repo.users[ana.ID.Hex()].Email)

	blank := "   "
	_, err = uc.Update(context.Background(), ana.ID.Hex(), dto.UpdateUserRequest{Name: &blank})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Equal(t, "Ana Gómez", repo.users[ana.ID.Hex()].Name)
}

func TestUserUpdatePassword_ActualIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")

	err := uc.UpdatePassword(context.Background(), ana.ID.Hex(), "equivocada", "nuevoSecreto")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestUserUpdatePassword_CambiaElHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")
	before := ana.PasswordHash

	require.NoError(t, uc.UpdatePassword(context.Background(), ana.ID.Hex(), "secreto123", "nuevoSecreto"))
	after := repo.users[ana.ID.Hex()].PasswordHash
	assert.NotEqual(t, before, after)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after), []byte("nuevoSecreto")))
}

func TestUserUpdatePassword_NuevaMuyCorta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ana := seedUser(t, repo, "ana@example.com", "secreto123")

	err := uc.UpdatePassword(context.Background(), ana.ID.Hex(), "secreto123", "corta")
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestUserDelete_NoEncontrado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUserList_SinPasswordEnRespuesta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "ana@example.com", "secreto123")

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ana@example.com", out[0].Email)
}
