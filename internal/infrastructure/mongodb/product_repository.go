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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(productsCollection)}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return wrapWriteErr(err, "ya existe un producto con ese slug")
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var p entity.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar producto por id: %w", err)
	}
	return &p, nil
}

// GetBySlug obtiene un producto por slug; (nil, nil) si no existe.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var p entity.Product
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar producto por slug: %w", err)
	}
	return &p, nil
}

// List devuelve los productos que pasan el filtro, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Color != "" {
		query["color"] = filter.Color
	}
	if filter.Scale != "" {
		query["scale"] = filter.Scale
	}
	if filter.OutOfStock != nil {
		query["outOfStock"] = *filter.OutOfStock
	}
	if priceRange := priceQuery(filter.MinPrice, filter.MaxPrice); priceRange != nil {
		query["price"] = priceRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	return products, nil
}

// Update reemplaza el documento completo (el merge ocurre en el caso de uso).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return wrapWriteErr(err, "ya existe un producto con ese slug")
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}
