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

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre MongoDB.
type BrandRepo struct {
	coll *mongo.Collection
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(db *mongo.Database) *BrandRepo {
	return &BrandRepo{coll: db.Collection(brandsCollection)}
}

// Create persiste una nueva marca.
func (r *BrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	_, err := r.coll.InsertOne(ctx, brand)
	if err != nil {
		return wrapWriteErr(err, "ya existe una marca con ese nombre")
	}
	return nil
}

// GetByID obtiene una marca por ID; (nil, nil) si no existe.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var b entity.Brand
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar marca por id: %w", err)
	}
	return &b, nil
}

// GetByName obtiene una marca por nombre exacto; (nil, nil) si no existe.
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	var b entity.Brand
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar marca por nombre: %w", err)
	}
	return &b, nil
}

// List devuelve todas las marcas ordenadas por nombre ascendente.
func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar marcas: %w", err)
	}
	defer cursor.Close(ctx)

	brands := []*entity.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decodificar marcas: %w", err)
	}
	return brands, nil
}

// Update reemplaza el documento completo.
func (r *BrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": brand.ID}, brand)
	if err != nil {
		return wrapWriteErr(err, "ya existe una marca con ese nombre")
	}
	return nil
}

// Delete elimina una marca por ID.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("eliminar marca: %w", err)
	}
	return nil
}
