package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de las colecciones del catálogo.
const (
	usersCollection       = "users"
	brandsCollection      = "brands"
	productsCollection    = "products"
	accessoriesCollection = "accessories"
	sparePartsCollection  = "spare_parts"
)

// EnsureIndexes crea los índices al arrancar. Los únicos son la fuente
// de verdad de unicidad: los pre-chequeos de los casos de uso solo dan
// mejores mensajes; ante una carrera responde el índice con un
// duplicate key que se traduce a Conflict.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	spec := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		brandsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		productsCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "brand", Value: 1}}},
		},
		accessoriesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "brand", Value: 1}}},
			{Keys: bson.D{{Key: "compatibleProductIds", Value: 1}}},
		},
		sparePartsCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "brand", Value: 1}}},
			{Keys: bson.D{{Key: "compatibleProductIds", Value: 1}}},
		},
	}

	for coll, models := range spec {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("crear índices de %s: %w", coll, err)
		}
	}
	return nil
}
