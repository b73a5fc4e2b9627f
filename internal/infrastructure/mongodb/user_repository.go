package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(usersCollection)}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return wrapWriteErr(err, "el email ya está registrado")
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decodificar usuarios: %w", err)
	}
	return users, nil
}

// Update reemplaza el documento completo (el merge ocurre en el caso de uso).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return wrapWriteErr(err, "el email ya está registrado")
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}
